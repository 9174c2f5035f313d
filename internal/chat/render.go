package chat

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"hotel-concierge/internal/models"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Renderer turns a Reply into the string returned to the chat widget.
type Renderer interface {
	Render(r *Reply) string
}

// NewRenderer returns the renderer for format. Room links point at
// roomLinkBase followed by the escaped room name.
func NewRenderer(format, roomLinkBase string) (Renderer, error) {
	base := strings.TrimRight(roomLinkBase, "/")
	switch format {
	case FormatHTML, "":
		return &htmlRenderer{linkBase: base}, nil
	case FormatMarkdown:
		return &markdownRenderer{linkBase: base}, nil
	case FormatText:
		return &textRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown chat format %q", format)
	}
}

func roomURL(base, name string) string {
	return base + "/" + url.PathEscape(name)
}

func formatPrice(room *models.Room) string {
	return room.Price.StringFixed(2)
}

const (
	linkClass       = "text-blue-400 hover:text-blue-800 underline"
	buttonClass     = "px-4 py-2 bg-blue-500 text-white rounded hover:bg-blue-600 focus:outline-none focus:ring focus:border-blue-300"
	roomButtonClass = "px-4 py-2 mt-4 bg-blue-500 text-white rounded hover:bg-blue-600 focus:outline-none focus:border-blue-300"
	imageClass      = "object-cover rounded-lg mr-2 mb-2"
)

// Text segments keep their apostrophes and quotes as the widget shows them;
// only markup characters are escaped.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type htmlRenderer struct {
	linkBase string
}

func (h *htmlRenderer) Render(r *Reply) string {
	var b strings.Builder
	for _, seg := range r.Segments {
		switch seg.Kind {
		case SegmentText:
			textEscaper.WriteString(&b, seg.Text)
		case SegmentBold:
			b.WriteString("<b>" + html.EscapeString(seg.Text) + "</b>")
		case SegmentLink:
			fmt.Fprintf(&b, `<a class="%s" href="%s" target="_blank">%s</a>`,
				linkClass, html.EscapeString(seg.URL), html.EscapeString(seg.Text))
		case SegmentButton:
			fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`,
				buttonClass, html.EscapeString(seg.URL), html.EscapeString(seg.Text))
		case SegmentRoomCard:
			h.roomCard(&b, seg.Room)
		case SegmentRoomLinks:
			b.WriteString(`<div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4">`)
			for _, name := range seg.Names {
				fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`,
					roomButtonClass, html.EscapeString(roomURL(h.linkBase, name)), html.EscapeString(name))
			}
			b.WriteString(`</div>`)
		case SegmentRoomNames:
			bolded := make([]string, len(seg.Names))
			for i, name := range seg.Names {
				bolded[i] = " <b>" + html.EscapeString(name) + "</b> "
			}
			b.WriteString(strings.Join(bolded, ", ") + " |")
		case SegmentBreak:
			b.WriteString("<br>")
		}
	}
	return b.String()
}

func (h *htmlRenderer) roomCard(b *strings.Builder, room *models.Room) {
	b.WriteString(`<div class="grid grid-cols-2 gap-4"><div class="flex flex-col">`)
	fmt.Fprintf(b, "<p>Room Name: %s</p>", html.EscapeString(room.Name))
	fmt.Fprintf(b, "<p>Price: %s</p>", formatPrice(room))
	fmt.Fprintf(b, "<p>Room Type: %s</p>", html.EscapeString(room.Type))
	b.WriteString(`</div><div class="grid lg:grid-cols-2 gap-4 md:grid-2">`)
	for i, img := range room.Images() {
		fmt.Fprintf(b, `<img src="data:image/png;base64,%s" alt="Image %d" class="%s">`, img, i+1, imageClass)
	}
	b.WriteString(`</div></div>`)
}

type markdownRenderer struct {
	linkBase string
}

func (m *markdownRenderer) Render(r *Reply) string {
	var b strings.Builder
	for _, seg := range r.Segments {
		switch seg.Kind {
		case SegmentText:
			b.WriteString(seg.Text)
		case SegmentBold:
			b.WriteString("**" + seg.Text + "**")
		case SegmentLink, SegmentButton:
			fmt.Fprintf(&b, "[%s](%s)", seg.Text, seg.URL)
		case SegmentRoomCard:
			room := seg.Room
			fmt.Fprintf(&b, "\n\n**Room Name:** %s\n**Price:** %s\n**Room Type:** %s\n",
				room.Name, formatPrice(room), room.Type)
			for i, img := range room.Images() {
				fmt.Fprintf(&b, "\n![Image %d](data:image/png;base64,%s)", i+1, img)
			}
		case SegmentRoomLinks:
			for _, name := range seg.Names {
				fmt.Fprintf(&b, "\n- [%s](%s)", name, roomURL(m.linkBase, name))
			}
		case SegmentRoomNames:
			bolded := make([]string, len(seg.Names))
			for i, name := range seg.Names {
				bolded[i] = "**" + name + "**"
			}
			b.WriteString(strings.Join(bolded, ", "))
		case SegmentBreak:
			b.WriteString("\n")
		}
	}
	return b.String()
}

type textRenderer struct{}

func (textRenderer) Render(r *Reply) string {
	var b strings.Builder
	for _, seg := range r.Segments {
		switch seg.Kind {
		case SegmentText, SegmentBold:
			b.WriteString(seg.Text)
		case SegmentLink, SegmentButton:
			if seg.URL == "" || strings.HasSuffix(seg.URL, seg.Text) {
				b.WriteString(seg.Text)
			} else {
				b.WriteString(seg.Text + " (" + seg.URL + ")")
			}
		case SegmentRoomCard:
			room := seg.Room
			b.WriteString("Room Name: " + room.Name + ", Price: " + formatPrice(room) + ", Room Type: " + room.Type)
			for i, img := range room.Images() {
				b.WriteString(", Image " + strconv.Itoa(i+1) + ": data:image/png;base64," + img)
			}
		case SegmentRoomLinks, SegmentRoomNames:
			b.WriteString(strings.Join(seg.Names, ", "))
		case SegmentBreak:
			b.WriteString("\n")
		}
	}
	return b.String()
}
