package render

import (
	"bytes"
	"embed"
	stdhtml "html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed content/*.md
var contentFS embed.FS

// Markdown converts md to HTML. Links open in a new tab.
func Markdown(md []byte) template.HTML {
	opts := html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	}
	renderer := html.NewRenderer(opts)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Attributes)
	return template.HTML(markdown.Render(p.Parse(md), renderer))
}

// PlainText renders md and drops the markup, for terminal help texts.
func PlainText(md []byte) string {
	return stripTags(string(Markdown(md)))
}

// Intro is the page introduction.
func Intro() template.HTML {
	return Markdown(mustContent("content/intro.md"))
}

// IntroText is the introduction without markup.
func IntroText() string {
	return PlainText(mustContent("content/intro.md"))
}

// Tips is the closing advice shown under the examples.
func Tips() template.HTML {
	return Markdown(mustContent("content/tips.md"))
}

func mustContent(name string) []byte {
	b, err := contentFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return b
}

func stripTags(s string) string {
	var out bytes.Buffer
	inTag := false
	for _, ch := range s {
		switch ch {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				out.WriteRune(ch)
			}
		}
	}
	return strings.TrimSpace(stdhtml.UnescapeString(out.String()))
}
