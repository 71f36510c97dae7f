package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(), // <u> markers
	),
)

func (f *Field) HTML() (string, error) {
	return ToHTML(f.Text())
}

// Lines typed as bullets are rendered as list items.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdownSource(src)), &buf); err != nil {
		return "", fmt.Errorf("richtext: %w", err)
	}
	return buf.String(), nil
}

func markdownSource(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		if rest, ok := strings.CutPrefix(l, BulletPrefix); ok {
			lines[i] = "- " + rest
		}
	}
	return strings.Join(lines, "\n")
}
