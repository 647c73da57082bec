package cppparser

import (
	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

// parseDeclaration is the file-scope entry point for a variable or
// function declaration. It returns (NoIndex, nil) when the upcoming
// tokens don't look like a declaration at all, so the caller can fall
// back to parseRawCode.
func (p *Parser) parseDeclaration(leading []string, access dom.Accessibility) (dom.Index, error) {
	return p.parseDeclarationWithClass(leading, access, "")
}

// parseDeclarationWithClass is the shared implementation used both at
// file scope and inside a class body; owningClass is "" at file scope.
func (p *Parser) parseDeclarationWithClass(leading []string, access dom.Accessibility, owningClass string) (dom.Index, error) {
	cp := p.stream.Checkpoint()

	isStatic, isExtern, isConstexpr, isVirtual, isInline, isExplicit := false, false, false, false, false, false
modifierLoop:
	for {
		tok := p.peekSignificant()
		if tok.Kind != lexer.Ident {
			break
		}
		switch tok.Text {
		case "static":
			isStatic = true
		case "extern":
			isExtern = true
		case "constexpr":
			isConstexpr = true
		case "virtual":
			isVirtual = true
		case "inline":
			isInline = true
		case "explicit":
			isExplicit = true
		default:
			break modifierLoop
		}
		p.nextSignificant()
	}
	_ = isVirtual
	_ = isInline
	_ = isExplicit

	// Constructor/destructor: "ClassName(...)" or "~ClassName(...)" with
	// no return type, only recognizable inside a class body.
	if owningClass != "" {
		if p.peekIsPunct("~") && p.peekSignificantAt(1).Text == owningClass {
			return p.parseDestructor(leading, owningClass, access)
		}
		if p.peekSignificant().Text == owningClass && p.peekSignificantAt(1).Text == "(" {
			return p.parseConstructor(leading, owningClass, access, isExplicit)
		}
	}

	if !looksLikeTypeStart(p.peekSignificant()) {
		p.stream.Rewind(cp)
		return dom.NoIndex, nil
	}

	retType, err := p.parseType()
	if err != nil {
		p.stream.Rewind(cp)
		return dom.NoIndex, nil
	}

	if p.peekIsIdent("operator") {
		return p.parseOperatorFunction(leading, retType, owningClass, access, isStatic, isConstexpr)
	}

	var name string
	if n, ok := p.takeDeclaratorName(); ok {
		name = n
	} else {
		nameTok := p.peekSignificant()
		if nameTok.Kind != lexer.Ident {
			p.stream.Rewind(cp)
			return dom.NoIndex, nil
		}
		p.nextSignificant()
		name = nameTok.Text
	}

	if p.peekIsPunct("(") {
		return p.parseFunctionTail(leading, retType, name, owningClass, access, isStatic, isConstexpr, false, false)
	}

	return p.parseFieldTail(leading, retType, name, isStatic, isExtern)
}

// looksLikeTypeStart is a cheap lookahead filter so obviously
// non-declaration constructs (access specifiers, closing braces, stray
// semicolons) don't get fed into the more expensive type parser.
func looksLikeTypeStart(tok lexer.Token) bool {
	if tok.Kind != lexer.Ident {
		return false
	}
	switch tok.Text {
	case "public", "private", "protected", "return", "if", "else", "for", "while", "do", "switch", "namespace":
		return false
	}
	return true
}

func (p *Parser) parseFieldTail(leading []string, ty *dom.Type, firstName string, isStatic, isExtern bool) (dom.Index, error) {
	fd := &dom.FieldDeclaration{Type: ty, Static: isStatic, Extern: isExtern}
	name := firstName
	for {
		for p.peekIsPunct("[") {
			p.nextSignificant()
			dim := ""
			for !p.peekIsPunct("]") {
				dim += p.nextSignificant().Text
			}
			p.nextSignificant()
			ty.ArrayDims = append(ty.ArrayDims, dim)
		}
		if p.peekIsPunct(":") {
			p.nextSignificant()
			width, err := p.collectExprTokensUntil(",", ";")
			if err != nil {
				return dom.NoIndex, err
			}
			fd.BitfieldWidth = width
		}
		if p.peekIsPunct("=") {
			p.nextSignificant()
			if _, err := p.collectExprTokensUntil(",", ";"); err != nil {
				return dom.NoIndex, err
			}
		}
		fd.Names = append(fd.Names, name)
		if p.peekIsPunct(",") {
			p.nextSignificant()
			for p.peekIsPunct("*") {
				p.nextSignificant()
			}
			nameTok := p.nextSignificant()
			name = nameTok.Text
			continue
		}
		break
	}
	if err := p.expectPunct(";"); err != nil {
		return dom.NoIndex, err
	}
	idx := p.arena.Alloc(fd)
	fd.LeadingComments = leading
	if tc := p.collectTrailingComment(); tc != "" {
		fd.TrailingComments = append(fd.TrailingComments, tc)
	}
	return idx, nil
}

func (p *Parser) parseFunctionTail(
	leading []string, retType *dom.Type, name, owningClass string, access dom.Accessibility,
	isStatic, isConstexpr, isCtor, isDtor bool,
) (dom.Index, error) {
	if err := p.expectPunct("("); err != nil {
		return dom.NoIndex, err
	}
	fn := &dom.FunctionDeclaration{
		ReturnType: retType, Name: name, OwningClass: owningClass, Access: access,
		IsMember: owningClass != "", IsStatic: isStatic, IsConstexpr: isConstexpr,
		IsConstructor: isCtor, IsDestructor: isDtor,
	}
	idx := p.arena.Alloc(fn)
	fn.LeadingComments = leading

	for !p.peekIsPunct(")") {
		if p.peekIsPunct("...") {
			p.nextSignificant()
			fn.IsVariadic = true
			break
		}
		paramIdx, err := p.parseParameter()
		if err != nil {
			return dom.NoIndex, err
		}
		p.arena.AppendChild(idx, paramIdx)
		if p.peekIsPunct(",") {
			p.nextSignificant()
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return dom.NoIndex, err
	}

	for p.peekIsIdent("const") || p.peekIsIdent("noexcept") || p.peekIsIdent("override") || p.peekIsIdent("final") {
		p.nextSignificant()
	}

	switch {
	case p.peekIsPunct("="):
		p.nextSignificant()
		tok := p.nextSignificant()
		switch tok.Text {
		case "default":
			fn.IsDefault = true
		case "delete":
			fn.IsDeleted = true
		default:
			// "= 0" (pure virtual); nothing further to model.
		}
		if err := p.expectPunct(";"); err != nil {
			return dom.NoIndex, err
		}
	case p.peekIsPunct("{"):
		fn.HadBody = true
		if err := p.skipBracedBlock(); err != nil {
			return dom.NoIndex, err
		}
	default:
		if err := p.expectPunct(";"); err != nil {
			return dom.NoIndex, err
		}
	}

	if tc := p.collectTrailingComment(); tc != "" {
		fn.TrailingComments = append(fn.TrailingComments, tc)
	}
	return idx, nil
}

func (p *Parser) parseParameter() (dom.Index, error) {
	ty, err := p.parseType()
	if err != nil {
		return dom.NoIndex, err
	}
	name := ""
	if n, ok := p.takeDeclaratorName(); ok {
		name = n
	} else if p.peekSignificant().Kind == lexer.Ident {
		name = p.nextSignificant().Text
	}
	for p.peekIsPunct("[") {
		p.nextSignificant()
		dim := ""
		for !p.peekIsPunct("]") {
			dim += p.nextSignificant().Text
		}
		p.nextSignificant()
		ty.ArrayDims = append(ty.ArrayDims, dim)
	}
	param := &dom.FunctionParameter{Type: ty, Name: name}
	if p.peekIsPunct("=") {
		p.nextSignificant()
		var tokens []string
		depth := 0
		for {
			tok := p.peekSignificant()
			if depth == 0 && tok.Kind == lexer.Punct && (tok.Text == "," || tok.Text == ")") {
				break
			}
			if tok.Kind == lexer.Punct && (tok.Text == "(" || tok.Text == "[") {
				depth++
			}
			if tok.Kind == lexer.Punct && (tok.Text == ")" || tok.Text == "]") {
				depth--
			}
			tokens = append(tokens, tok.Text)
			p.nextSignificant()
		}
		param.DefaultTokens = tokens
	}
	return p.arena.Alloc(param), nil
}

func (p *Parser) parseConstructor(leading []string, owningClass string, access dom.Accessibility, isExplicit bool) (dom.Index, error) {
	p.nextSignificant() // class name
	idx, err := p.parseFunctionTail(leading, &dom.Type{BaseName: "void"}, owningClass, owningClass, access, false, false, true, false)
	if err != nil {
		return dom.NoIndex, err
	}
	_ = isExplicit
	return idx, nil
}

func (p *Parser) parseDestructor(leading []string, owningClass string, access dom.Accessibility) (dom.Index, error) {
	p.nextSignificant() // "~"
	p.nextSignificant() // class name
	return p.parseFunctionTail(leading, &dom.Type{BaseName: "void"}, "~"+owningClass, owningClass, access, false, false, false, true)
}

func (p *Parser) parseOperatorFunction(
	leading []string, retType *dom.Type, owningClass string, access dom.Accessibility, isStatic, isConstexpr bool,
) (dom.Index, error) {
	p.nextSignificant() // "operator"
	symbol := ""
	for !p.peekIsPunct("(") {
		symbol += p.nextSignificant().Text
	}
	name := "operator" + symbol
	idx, err := p.parseFunctionTail(leading, retType, name, owningClass, access, isStatic, isConstexpr, false, false)
	if err != nil {
		return dom.NoIndex, err
	}
	p.arena.Get(idx).(*dom.FunctionDeclaration).IsOperator = true
	return idx, nil
}

// skipBracedBlock consumes a "{ ... }" region with balanced nesting,
// discarding its contents - function bodies are parsed only to be
// dropped by mod_remove_function_bodies later, so there is no value in
// modeling their internals here.
func (p *Parser) skipBracedBlock() error {
	if err := p.expectPunct("{"); err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		tok := p.nextSignificant()
		if tok.Kind == lexer.EOF {
			return p.errorf(tok, "unterminated braced block")
		}
		if tok.Kind == lexer.Punct && tok.Text == "{" {
			depth++
		}
		if tok.Kind == lexer.Punct && tok.Text == "}" {
			depth--
		}
	}
	return nil
}
