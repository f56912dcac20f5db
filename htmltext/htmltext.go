// Package htmltext converts HTML fragments to plain text lines.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

var skipContent = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

// TextLine strips markup from s and returns its text content as a single
// line: tags are removed, <br> and block boundaries become spaces, entities
// are unescaped and runs of whitespace collapse to one space. Plain text
// passes through unchanged apart from whitespace normalization.
func TextLine(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if skipContent[string(name)] {
				skipDepth++
				continue
			}
			if isBreaking(string(name)) {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipContent[string(name)] && skipDepth > 0 {
				skipDepth--
				continue
			}
			if isBreaking(string(name)) {
				b.WriteByte(' ')
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if isBreaking(string(name)) {
				b.WriteByte(' ')
			}
		}
	}
}

func isBreaking(name string) bool {
	switch name {
	case "br", "p", "div", "li", "tr":
		return true
	}
	return false
}
