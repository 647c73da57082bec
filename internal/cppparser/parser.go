// Package cppparser implements a recursive-descent parser over the
// token stream produced by internal/lexer, building the DOM tree
// described in internal/dom. It accepts the subset of C++ observed in
// Dear ImGui-style headers: it does not implement template
// instantiation, cross-scope name resolution, expression evaluation
// (beyond the minimal arithmetic needed for enum values), or overload
// resolution - all of that is the modifier pipeline's job, working on
// the tree this package hands it.
package cppparser

import (
	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/errs"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

// Parser holds the mutable state of one parse: the token stream, the
// arena declarations are allocated into, and the handful of bits of
// context (angle-bracket splitting, a function-pointer declarator's
// name) that can't be threaded as plain parameters without making
// every call site ugly.
type Parser struct {
	filename string
	stream   *lexer.Stream
	arena    *dom.Arena

	// pendingCloseAngle is set when a ">>" token had to be split to
	// close one level of a nested template-argument list, and the
	// second ">" it represents hasn't been consumed yet.
	pendingCloseAngle bool

	// pendingDeclaratorName holds a declarator name consumed from
	// inside a function-pointer type's "(*Name)" syntax, since that
	// name appears nested inside the type instead of after it. Callers
	// that just parsed a type check and clear this before looking for
	// a separate name token.
	pendingDeclaratorName string
}

// takeDeclaratorName returns the name parseType captured from a
// function-pointer declarator, if any, clearing it in the process.
func (p *Parser) takeDeclaratorName() (string, bool) {
	if p.pendingDeclaratorName == "" {
		return "", false
	}
	name := p.pendingDeclaratorName
	p.pendingDeclaratorName = ""
	return name, true
}

// Parse tokenizes src and parses it into a new HeaderFile node in a
// fresh Arena, returning the arena and the HeaderFile's index.
func Parse(filename, src string) (*dom.Arena, dom.Index, error) {
	arena := dom.NewArena()
	root, err := ParseInto(arena, filename, src)
	if err != nil {
		return nil, dom.NoIndex, err
	}
	return arena, root, nil
}

// ParseInto tokenizes src and parses it into a new HeaderFile node
// allocated in the caller's arena, letting a driver parse several
// related headers (the main header plus its configuration includes)
// into one shared HeaderFileSet instead of juggling one arena per file.
func ParseInto(arena *dom.Arena, filename, src string) (dom.Index, error) {
	stream, err := lexer.Tokenize(src)
	if err != nil {
		return dom.NoIndex, errs.Wrap(errs.CodeParse, err, "tokenizing %s", filename)
	}
	p := &Parser{filename: filename, stream: stream, arena: arena}
	root := p.arena.Alloc(&dom.HeaderFile{OriginalFileName: filename})
	items, err := p.parseItems(func(lexer.Token) bool { return false })
	if err != nil {
		return dom.NoIndex, err
	}
	for _, it := range items {
		p.arena.AppendChild(root, it)
	}
	return root, nil
}

// stopFn reports whether tok (already peeked, not yet consumed) should
// end the current item list without being consumed by it - used for
// "}" closing a block and for the preprocessor directives that end a
// conditional's body.
type stopFn func(lexer.Token) bool

func isCloseBrace(tok lexer.Token) bool { return tok.Kind == lexer.Punct && tok.Text == "}" }

// parseItems parses a sequence of top-level declarations until stop
// reports true for the next significant token (which is left
// unconsumed) or EOF.
func (p *Parser) parseItems(stop stopFn) ([]dom.Index, error) {
	var out []dom.Index
	for {
		leading, blanks := p.collectLeadingTrivia()
		tok := p.peekSignificant()
		if tok.Kind == lexer.EOF || stop(tok) {
			// Any blank-line run collected here belongs between the
			// last item and the closing delimiter; drop it rather than
			// attach it to nothing. Cosmetic passes normalize spacing
			// anyway.
			_ = blanks
			return out, nil
		}
		idx, err := p.parseItem(leading)
		if err != nil {
			return nil, err
		}
		if idx != dom.NoIndex {
			out = append(out, idx)
		}
	}
}

// parseItem parses exactly one declaration-level construct and returns
// its node index with leading attached.
func (p *Parser) parseItem(leading []string) (dom.Index, error) {
	tok := p.peekSignificant()

	if tok.Kind == lexer.Preprocessor {
		return p.parsePreprocessor(leading)
	}

	if tok.Kind == lexer.Ident {
		switch tok.Text {
		case "namespace":
			return p.parseNamespace(leading)
		case "class", "struct", "union":
			return p.parseClassStructUnion(leading, dom.AccessPublic)
		case "enum":
			return p.parseEnum(leading)
		case "typedef":
			return p.parseTypedef(leading)
		case "template":
			return p.parseTemplate(leading)
		case "using":
			return p.parseUsingAlias(leading)
		}
	}

	idx, err := p.parseDeclaration(leading, dom.AccessPublic)
	if err != nil {
		return dom.NoIndex, err
	}
	if idx != dom.NoIndex {
		return idx, nil
	}
	return p.parseRawCode(leading)
}

// --- token helpers -------------------------------------------------

// peekSignificant returns the next non-trivia token without consuming
// anything.
func (p *Parser) peekSignificant() lexer.Token {
	for k := 0; ; k++ {
		tok := p.stream.Peek(k)
		if !tok.IsTrivia() {
			return tok
		}
	}
}

// peekSignificantAt returns the n-th non-trivia token ahead (0 =
// peekSignificant()).
func (p *Parser) peekSignificantAt(n int) lexer.Token {
	count := -1
	for k := 0; ; k++ {
		tok := p.stream.Peek(k)
		if tok.Kind == lexer.EOF {
			return tok
		}
		if !tok.IsTrivia() {
			count++
			if count == n {
				return tok
			}
		}
	}
}

// nextSignificant consumes and discards trivia tokens, then consumes
// and returns the next significant token.
func (p *Parser) nextSignificant() lexer.Token {
	for {
		tok := p.stream.Next()
		if !tok.IsTrivia() {
			return tok
		}
	}
}

// collectLeadingTrivia consumes whitespace/newline/comment tokens up to
// (not including) the next significant token, returning any comment
// text encountered (as candidate leading comments) plus whether a run
// of two or more consecutive newlines was seen (a blank line).
func (p *Parser) collectLeadingTrivia() (comments []string, blankLine bool) {
	newlineRun := 0
	for {
		tok := p.stream.Peek(0)
		switch tok.Kind {
		case lexer.Newline:
			newlineRun++
			if newlineRun >= 2 {
				blankLine = true
			}
			p.stream.Next()
		case lexer.Whitespace:
			p.stream.Next()
		case lexer.LineComment, lexer.BlockComment:
			newlineRun = 0
			comments = append(comments, tok.Text)
			p.stream.Next()
		default:
			return comments, blankLine
		}
	}
}

// collectTrailingComment looks for a single comment on the same
// source line as the token just consumed (no intervening newline) and
// consumes it if present.
func (p *Parser) collectTrailingComment() string {
	for k := 0; ; k++ {
		tok := p.stream.Peek(k)
		switch tok.Kind {
		case lexer.Whitespace:
			continue
		case lexer.LineComment, lexer.BlockComment:
			for i := 0; i <= k; i++ {
				p.stream.Next()
			}
			return tok.Text
		default:
			return ""
		}
	}
}

// expectPunct consumes the next significant token and errors if it is
// not the punctuator text given.
func (p *Parser) expectPunct(text string) error {
	tok := p.nextSignificant()
	if tok.Kind != lexer.Punct || tok.Text != text {
		return p.errorf(tok, "expected %q, found %q", text, tok.Text)
	}
	return nil
}

func (p *Parser) peekIsPunct(text string) bool {
	tok := p.peekSignificant()
	return tok.Kind == lexer.Punct && tok.Text == text
}

func (p *Parser) peekIsIdent(text string) bool {
	tok := p.peekSignificant()
	return tok.Kind == lexer.Ident && tok.Text == text
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return errs.New(errs.CodeParse, format, args...).At(p.filename, tok.Pos.Line)
}
