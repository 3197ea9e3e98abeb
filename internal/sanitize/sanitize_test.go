package sanitize

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/postprep/postprep/internal/model"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain ascii", "hello world", "hello world"},
		{"multibyte kept", "café 日本語 🙂", "café 日本語 🙂"},
		{"truncated sequence", "ok\xe2\x28\xa1ok", "ok�(�ok"},
		{"lone continuation byte", "a\x80b", "a�b"},
		{"encoded surrogate", "x\xed\xa0\x80y", "x�y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestPosts(t *testing.T) {
	ps := []model.Post{
		{Text: "fine", Engagement: 3},
		{Text: "bad\xffbyte"},
	}
	Posts(ps)

	assert.Equal(t, "fine", ps[0].Text)
	assert.Equal(t, 3, ps[0].Engagement)
	assert.Equal(t, "bad�byte", ps[1].Text)
}
