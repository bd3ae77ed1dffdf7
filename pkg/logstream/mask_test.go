package logstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMasker(t *testing.T) {
	tests := []struct {
		name    string
		secrets []string
		input   string
		want    string
	}{
		{"Masks token", []string{"ghp_secret"}, "Authorization: Bearer ghp_secret", "Authorization: Bearer " + maskedStr},
		{"Masks every line of a multiline secret", []string{"first\nsecond"}, "first then second", maskedStr + " then " + maskedStr},
		{"Ignores short secrets", []string{"", "a"}, "a bearer", "a bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewMasker(&buf, tt.secrets...)
			n, err := w.Write([]byte(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, tt.want, MaskString(tt.input, tt.secrets...))
		})
	}
}
