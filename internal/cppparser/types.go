package cppparser

import (
	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

// multiWordBuiltins lists the builtin type keywords that can combine
// with each other (e.g. "unsigned long long int") so the base-name
// scanner knows to keep consuming identifiers instead of stopping at
// the first one.
var multiWordBuiltins = map[string]bool{
	"unsigned": true, "signed": true, "long": true, "short": true,
	"int": true, "char": true, "double": true, "float": true, "bool": true, "void": true,
}

// parseType consumes a type-id: optional cv-qualifiers, a base name
// (possibly multi-word, possibly template-id, possibly elaborated with
// struct/class/enum), then either a function-pointer declarator suffix
// or a plain pointer/reference/array chain.
func (p *Parser) parseType() (*dom.Type, error) {
	t := &dom.Type{}

	for {
		switch {
		case p.peekIsIdent("const"):
			p.nextSignificant()
			t.Const = true
		case p.peekIsIdent("volatile"):
			p.nextSignificant()
			t.Volatile = true
		case p.peekIsIdent("struct") || p.peekIsIdent("class") || p.peekIsIdent("enum") || p.peekIsIdent("typename"):
			p.nextSignificant()
		default:
			goto qualsDone
		}
	}
qualsDone:

	name, err := p.parseBaseName()
	if err != nil {
		return nil, err
	}
	t.BaseName = name

	if p.peekIsPunct("<") {
		args, err := p.parseTemplateArgList()
		if err != nil {
			return nil, err
		}
		t.TemplateArgs = args
	}

	// Trailing cv-qualifiers, e.g. "ImVector<int> const".
	for p.peekIsIdent("const") || p.peekIsIdent("volatile") {
		if p.peekIsIdent("const") {
			t.Const = true
		} else {
			t.Volatile = true
		}
		p.nextSignificant()
	}

	if fp, ok, err := p.tryParseFuncPtrSuffix(t); err != nil {
		return nil, err
	} else if ok {
		return fp, nil
	}

	for p.peekIsPunct("*") {
		p.nextSignificant()
		t.Pointer++
		isConst := false
		if p.peekIsIdent("const") {
			p.nextSignificant()
			isConst = true
		}
		t.PointerLevelConst = append(t.PointerLevelConst, isConst)
	}

	if p.peekIsPunct("&") {
		p.nextSignificant()
		t.Reference = true
	} else if p.peekIsPunct("&&") {
		p.nextSignificant()
		t.Reference = true
	}

	return t, nil
}

// parseBaseName consumes the base type name: a run of builtin keywords
// ("unsigned int"), or a single (possibly "::"-qualified) identifier.
func (p *Parser) parseBaseName() (string, error) {
	first := p.nextSignificant()
	if first.Kind != lexer.Ident {
		return "", p.errorf(first, "expected a type name, found %q", first.Text)
	}
	name := first.Text
	if multiWordBuiltins[first.Text] {
		for {
			tok := p.peekSignificant()
			if tok.Kind == lexer.Ident && multiWordBuiltins[tok.Text] {
				name += " " + tok.Text
				p.nextSignificant()
				continue
			}
			break
		}
		return name, nil
	}
	for p.peekIsPunct("::") {
		p.nextSignificant()
		next := p.nextSignificant()
		name += "::" + next.Text
	}
	return name, nil
}

// parseTemplateArgList parses "<" arg ("," arg)* ">" where each arg is
// itself a type. Handles a closing ">>" token by splitting it: the
// first half closes this level, the second is remembered for the
// caller one level up.
func (p *Parser) parseTemplateArgList() ([]*dom.Type, error) {
	if p.pendingCloseAngle {
		p.pendingCloseAngle = false
		return nil, nil
	}
	p.nextSignificant() // consume "<"

	var args []*dom.Type
	for {
		if p.tryCloseAngle() {
			return args, nil
		}
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peekIsPunct(",") {
			p.nextSignificant()
			continue
		}
		if p.tryCloseAngle() {
			return args, nil
		}
		tok := p.peekSignificant()
		return nil, p.errorf(tok, "expected ',' or '>' in template argument list, found %q", tok.Text)
	}
}

// tryCloseAngle consumes a single closing ">" of a template-argument
// list, splitting a ">>" token into two single-">" closes when needed.
func (p *Parser) tryCloseAngle() bool {
	if p.pendingCloseAngle {
		p.pendingCloseAngle = false
		return true
	}
	tok := p.peekSignificant()
	if tok.Kind == lexer.Punct && tok.Text == ">" {
		p.nextSignificant()
		return true
	}
	if tok.Kind == lexer.Punct && tok.Text == ">>" {
		p.nextSignificant()
		p.pendingCloseAngle = true
		return true
	}
	return false
}

// tryParseFuncPtrSuffix recognizes "(*Name)(ParamTypes)" or
// "(*)(ParamTypes)" immediately following a base type, the C
// function-pointer declarator shape.
func (p *Parser) tryParseFuncPtrSuffix(base *dom.Type) (*dom.Type, bool, error) {
	if !p.peekIsPunct("(") || p.peekSignificantAt(1).Text != "*" {
		return nil, false, nil
	}
	p.nextSignificant() // "("
	p.nextSignificant() // "*"

	var fp dom.FuncPtrSignature
	fp.ReturnType = base

	if p.peekSignificant().Kind == lexer.Ident {
		p.pendingDeclaratorName = p.nextSignificant().Text
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, false, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, false, err
	}
	for !p.peekIsPunct(")") {
		if p.peekIsPunct("...") {
			p.nextSignificant()
			fp.Variadic = true
			break
		}
		pt, err := p.parseType()
		if err != nil {
			return nil, false, err
		}
		name := ""
		if p.peekSignificant().Kind == lexer.Ident {
			name = p.nextSignificant().Text
		}
		fp.ParamTypes = append(fp.ParamTypes, pt)
		fp.ParamNames = append(fp.ParamNames, name)
		if p.peekIsPunct(",") {
			p.nextSignificant()
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, false, err
	}
	return &dom.Type{BaseName: "", FuncPtr: &fp}, true, nil
}
