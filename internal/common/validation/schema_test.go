package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"minProperties": 1,
	"properties": {
		"Email": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
		"City": {"type": "string", "maxLength": 5}
	}
}`

func TestSchema_Validate(t *testing.T) {
	s := MustCompile(testSchema)

	tests := []struct {
		name      string
		doc       map[string]interface{}
		wantValid bool
		wantField string
	}{
		{"valid", map[string]interface{}{"Email": "a@b.c"}, true, ""},
		{"empty object", map[string]interface{}{}, false, "(root)"},
		{"bad email", map[string]interface{}{"Email": "nope"}, false, "Email"},
		{"too long", map[string]interface{}{"City": "Jaipur City"}, false, "City"},
		{"wrong type", map[string]interface{}{"City": 12}, false, "City"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Validate(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				require.NotEmpty(t, res.Errors)
				assert.Equal(t, tt.wantField, res.Errors[0].Field)
				assert.Contains(t, res.Summary(), tt.wantField+": ")
			}
		})
	}
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile(`{"type": 12}`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompile(`not json`) })
}
