package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorTitles(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"no markup", "plain message", nil},
		{"single anchor", "please <a>click here</a> now", []string{"click here"}},
		{
			"multiple anchors in order",
			"<a>first</a> and <a>second</a> and <a>third</a>",
			[]string{"first", "second", "third"},
		},
		{"empty anchor", "<a></a>", []string{""}},
		{"strong is not an anchor", "<strong>bold</strong>", nil},
		{"anchor inside strong text", "<strong>see <a>docs</a></strong>", []string{"docs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnchorTitles(tt.message))
		})
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"no markup", "plain message", "plain message"},
		{"anchor", "please <a>click here</a> now", "please click here now"},
		{"strong", "this is <strong>important</strong>", "this is important"},
		{"mixed", "<strong>see</strong> the <a>changelog</a>", "see the changelog"},
		{"unknown tags survive", "keep <em>this</em>", "keep <em>this</em>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.message))
		})
	}
}
