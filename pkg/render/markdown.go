package render

import (
	"bytes"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// Renderer converts raw entry markup to HTML. Rendering is pure: the same
// input always produces the same output.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with fenced code blocks highlighted and wrapped in a
// codehilite container.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle("friendly"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
				highlighting.WithWrapperRenderer(codehiliteWrapper),
			),
		),
	)

	return &Renderer{md: md}
}

// Render converts raw markup to HTML.
func (r *Renderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(normalizeHeadings(text)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func codehiliteWrapper(w util.BufWriter, _ highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="codehilite">`)
	} else {
		_, _ = w.WriteString(`</div>`)
	}
}

var (
	tightHeading = regexp.MustCompile(`^(#{1,6})([^#\s].*)$`)
	codeFence    = regexp.MustCompile("^(```|~~~)")
)

// normalizeHeadings inserts the space CommonMark requires between the hashes
// of an ATX heading and its text. Older markdown dialects accept "##Title"
// as a heading and existing entries are written that way. Lines inside
// fenced code blocks are left alone.
func normalizeHeadings(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		if codeFence.MatchString(strings.TrimLeft(line, " ")) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = tightHeading.ReplaceAllString(line, "$1 $2")
	}
	return strings.Join(lines, "\n")
}
