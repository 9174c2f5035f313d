package chat

import (
	"regexp"
	"strings"
)

var dateToken = regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`)

// containsAny reports whether lower contains any keyword as a raw substring.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// containsAnyWordStart reports whether any keyword occurs in lower starting at a
// word boundary. The keyword may run into the rest of a word ("room" matches
// "rooms") but may not start inside one ("ha" does not match "thanks").
func containsAnyWordStart(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if hasWordStart(lower, kw) {
			return true
		}
	}
	return false
}

func hasWordStart(s, kw string) bool {
	if kw == "" {
		return false
	}
	for offset := 0; offset < len(s); {
		i := strings.Index(s[offset:], kw)
		if i < 0 {
			return false
		}
		at := offset + i
		if at == 0 || !isWordByte(s[at-1]) {
			return true
		}
		offset = at + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// matchRoomName returns the first catalog name, in catalog order, that occurs
// in message as a whole word, ignoring case.
func matchRoomName(message string, names []string) (string, bool) {
	for _, name := range names {
		if name == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(message) {
			return name, true
		}
	}
	return "", false
}

// extractDate returns the first DD-MM-YYYY token in message.
func extractDate(message string) (string, bool) {
	d := dateToken.FindString(message)
	return d, d != ""
}
