package cppparser

import (
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

// splitDirective splits a lexer.Preprocessor token's text (the whole
// "#word rest" line, interior spacing preserved) into the directive
// word and the untouched remainder.
func splitDirective(text string) (word, rest string) {
	s := strings.TrimPrefix(text, "#")
	s = strings.TrimLeft(s, " \t")
	i := 0
	for i < len(s) && (isLetter(s[i]) || s[i] == '_') {
		i++
	}
	word = s[:i]
	rest = s[i:]
	return word, rest
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (p *Parser) parsePreprocessor(leading []string) (dom.Index, error) {
	tok := p.nextSignificant() // the whole directive line
	word, rest := splitDirective(tok.Text)

	var idx dom.Index
	switch word {
	case "include":
		idx = p.buildInclude(rest)
	case "pragma":
		idx = p.arena.Alloc(&dom.Pragma{Text: strings.TrimSpace(rest)})
	case "define":
		idx = p.buildDefine(rest)
	case "if", "ifdef", "ifndef":
		return p.parseConditionalChain(leading, word, rest, tok)
	case "else", "elif", "endif":
		return dom.NoIndex, p.errorf(tok, "stray #%s with no matching #if", word)
	default:
		idx = p.arena.Alloc(&dom.Code{Text: tok.Text})
	}
	n := p.arena.Get(idx)
	n.Base().LeadingComments = leading
	if tc := p.collectTrailingComment(); tc != "" {
		n.Base().TrailingComments = append(n.Base().TrailingComments, tc)
	}
	return idx, nil
}

func (p *Parser) buildInclude(rest string) dom.Index {
	rest = strings.TrimSpace(rest)
	if len(rest) >= 2 && rest[0] == '<' {
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			end = len(rest)
		}
		path := rest[1:end]
		return p.arena.Alloc(&dom.Include{Path: path, IsSystem: true})
	}
	rest = strings.Trim(rest, `"`)
	return p.arena.Alloc(&dom.Include{Path: rest, IsSystem: false})
}

func (p *Parser) buildDefine(rest string) dom.Index {
	rest = strings.TrimLeft(rest, " \t")
	i := 0
	for i < len(rest) && (isLetter(rest[i]) || isDigitByte(rest[i]) || rest[i] == '_') {
		i++
	}
	name := rest[:i]
	d := &dom.Define{Name: name}
	if i < len(rest) && rest[i] == '(' {
		// Function-like macro: no space between name and '(' is the
		// rule that distinguishes it from an object-like macro whose
		// value happens to start with a parenthesis.
		d.FunctionLike = true
		close := strings.IndexByte(rest[i:], ')')
		if close >= 0 {
			paramList := rest[i+1 : i+close]
			for _, param := range strings.Split(paramList, ",") {
				param = strings.TrimSpace(param)
				if param != "" {
					d.Params = append(d.Params, param)
				}
			}
			d.Value = strings.TrimSpace(rest[i+close+1:])
		}
	} else {
		d.Value = strings.TrimSpace(rest[i:])
	}
	return p.arena.Alloc(d)
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// parseConditionalChain parses a "#if"/"#ifdef"/"#ifndef" directive,
// its body, and recursively any "#elif"/"#else" branches, terminating
// at the matching "#endif". An "#elif" is represented as a nested
// PreprocessorConditional stored as the sole entry of the outer node's
// ElseBody.
func (p *Parser) parseConditionalChain(leading []string, word, rest string, directiveTok lexer.Token) (dom.Index, error) {
	expr, negated := conditionExprFor(word, rest)

	node := &dom.PreprocessorConditional{Expr: expr, Negated: negated}
	idx := p.arena.Alloc(node)
	node.LeadingComments = leading

	body, err := p.parseItems(func(tok lexer.Token) bool {
		return tok.Kind == lexer.Preprocessor && isElseFamily(tok.Text)
	})
	if err != nil {
		return dom.NoIndex, err
	}
	for _, c := range body {
		p.arena.AppendChild(idx, c)
	}

	closer := p.nextSignificant()
	cword, crest := splitDirective(closer.Text)
	switch cword {
	case "endif":
		return idx, nil
	case "else":
		node.HasElse = true
		elseBody, err := p.parseItems(func(tok lexer.Token) bool {
			return tok.Kind == lexer.Preprocessor && isDirective(tok.Text, "endif")
		})
		if err != nil {
			return dom.NoIndex, err
		}
		node.ElseBody = elseBody
		end := p.nextSignificant()
		if w, _ := splitDirective(end.Text); w != "endif" {
			return dom.NoIndex, p.errorf(end, "expected #endif, found #%s", w)
		}
		return idx, nil
	case "elif":
		node.HasElse = true
		nested, err := p.parseConditionalChain(nil, "if", crest, closer)
		if err != nil {
			return dom.NoIndex, err
		}
		node.ElseBody = []dom.Index{nested}
		return idx, nil
	default:
		return dom.NoIndex, p.errorf(closer, "unexpected #%s inside conditional", cword)
	}
}

func isElseFamily(text string) bool {
	w, _ := splitDirective(text)
	return w == "else" || w == "elif" || w == "endif"
}

func isDirective(text, word string) bool {
	w, _ := splitDirective(text)
	return w == word
}

// conditionExprFor normalizes #if/#ifdef/#ifndef into a single
// (expression text, negated) pair so downstream code only has to
// reason about one shape.
func conditionExprFor(word, rest string) (expr string, negated bool) {
	rest = strings.TrimSpace(rest)
	switch word {
	case "ifdef":
		return "defined(" + rest + ")", false
	case "ifndef":
		return "defined(" + rest + ")", true
	default:
		return rest, false
	}
}
