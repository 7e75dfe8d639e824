package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeadings(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "heading with space",
			input:    "## This is a post",
			expected: "<h2>This is a post</h2>",
		},
		{
			name:     "heading without space",
			input:    "##This is a post",
			expected: "<h2>This is a post</h2>",
		},
		{
			name:     "h1 without space",
			input:    "#Hello",
			expected: "<h1>Hello</h1>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Render(tt.input)
			require.NoError(t, err)
			assert.Contains(t, html, tt.expected)
		})
	}
}

func TestRenderFencedCode(t *testing.T) {
	r := New()

	input := "##This is a post\n```python\n    def func(x):\n        return x\n```"
	html, err := r.Render(input)
	require.NoError(t, err)

	assert.Contains(t, html, `class="codehilite"`)
	assert.Contains(t, html, "<h2>This is a post</h2>")
}

func TestRenderLeavesCodeUntouched(t *testing.T) {
	r := New()

	// a shell comment inside a fence must not become a heading
	input := "```sh\n#not a heading\n```"
	html, err := r.Render(input)
	require.NoError(t, err)

	assert.NotContains(t, html, "<h1>")
	assert.Contains(t, html, "not a heading")
}

func TestRenderIsIdempotent(t *testing.T) {
	r := New()

	input := "##Title\n\nSome *emphasis* and a [link](https://example.com).\n"
	first, err := r.Render(input)
	require.NoError(t, err)
	second, err := r.Render(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
