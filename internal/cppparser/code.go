package cppparser

import (
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

// parseRawCode is the generic "tokens until top-level semicolon"
// fallback from spec.md §4.2: anything the dedicated productions don't
// recognize is captured verbatim into a Code node so the rest of the
// file can still be parsed, rather than aborting the whole run.
func (p *Parser) parseRawCode(leading []string) (dom.Index, error) {
	var b strings.Builder
	depth := 0
	for {
		tok := p.stream.Next()
		switch tok.Kind {
		case lexer.EOF:
			idx := p.arena.Alloc(&dom.Code{Text: b.String()})
			p.arena.Get(idx).Base().LeadingComments = leading
			return idx, nil
		case lexer.Whitespace, lexer.Newline:
			b.WriteString(tok.Text)
			continue
		case lexer.LineComment, lexer.BlockComment:
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(tok.Text)
		if tok.Kind == lexer.Punct {
			switch tok.Text {
			case "{", "(", "[":
				depth++
			case "}", ")", "]":
				depth--
			case ";":
				if depth <= 0 {
					idx := p.arena.Alloc(&dom.Code{Text: b.String()})
					p.arena.Get(idx).Base().LeadingComments = leading
					if tc := p.collectTrailingComment(); tc != "" {
						p.arena.Get(idx).Base().TrailingComments = append(p.arena.Get(idx).Base().TrailingComments, tc)
					}
					return idx, nil
				}
			}
		}
	}
}
