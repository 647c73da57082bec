package cppparser

import (
	"fmt"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/lexer"
)

func (p *Parser) parseNamespace(leading []string) (dom.Index, error) {
	p.nextSignificant() // "namespace"
	name := ""
	if p.peekSignificant().Kind == lexer.Ident {
		name = p.nextSignificant().Text
	}
	if err := p.expectPunct("{"); err != nil {
		return dom.NoIndex, err
	}
	ns := &dom.Namespace{Name: name}
	idx := p.arena.Alloc(ns)
	ns.LeadingComments = leading

	children, err := p.parseItems(isCloseBrace)
	if err != nil {
		return dom.NoIndex, err
	}
	for _, c := range children {
		p.arena.AppendChild(idx, c)
	}
	if err := p.expectPunct("}"); err != nil {
		return dom.NoIndex, err
	}
	return idx, nil
}

var anonCounter int

func (p *Parser) parseClassStructUnion(leading []string, access dom.Accessibility) (dom.Index, error) {
	kindTok := p.nextSignificant() // "class"/"struct"/"union"
	var kind dom.StructKind
	switch kindTok.Text {
	case "class":
		kind = dom.StructKindClass
	case "union":
		kind = dom.StructKindUnion
	default:
		kind = dom.StructKindStruct
	}

	name := ""
	anonymous := true
	if p.peekSignificant().Kind == lexer.Ident {
		name = p.nextSignificant().Text
		anonymous = false
	}

	var bases []string
	if p.peekIsPunct(":") {
		p.nextSignificant()
		for {
			if p.peekIsIdent("public") || p.peekIsIdent("private") || p.peekIsIdent("protected") {
				p.nextSignificant()
			}
			baseName, err := p.parseBaseName()
			if err != nil {
				return dom.NoIndex, err
			}
			bases = append(bases, baseName)
			if p.peekIsPunct(",") {
				p.nextSignificant()
				continue
			}
			break
		}
	}

	node := &dom.ClassStructUnion{Name: name, StructKind: kind, Anonymous: anonymous, Bases: bases}

	if p.peekIsPunct(";") {
		p.nextSignificant()
		node.ForwardDeclaration = true
		idx := p.arena.Alloc(node)
		node.LeadingComments = leading
		return idx, nil
	}

	if err := p.expectPunct("{"); err != nil {
		return dom.NoIndex, err
	}
	idx := p.arena.Alloc(node)
	node.LeadingComments = leading

	if anonymous {
		node.Name = fmt.Sprintf("anonymous%d", anonCounter)
		anonCounter++
	}

	curAccess := dom.AccessPublic
	if kind == dom.StructKindClass {
		curAccess = dom.AccessPrivate
	}

	for {
		leadingMember, _ := p.collectLeadingTrivia()
		tok := p.peekSignificant()
		if isCloseBrace(tok) || tok.Kind == lexer.EOF {
			break
		}
		if tok.Kind == lexer.Ident && (tok.Text == "public" || tok.Text == "private" || tok.Text == "protected") && p.peekSignificantAt(1).Text == ":" {
			switch tok.Text {
			case "public":
				curAccess = dom.AccessPublic
			case "private":
				curAccess = dom.AccessPrivate
			case "protected":
				curAccess = dom.AccessProtected
			}
			p.nextSignificant()
			p.nextSignificant()
			continue
		}
		if tok.Kind == lexer.Ident && tok.Text == "friend" {
			p.nextSignificant()
			// Friend declarations don't cross the C boundary; consume
			// the rest as raw code to keep the parser in sync.
			memberIdx, err := p.parseRawCode(leadingMember)
			if err != nil {
				return dom.NoIndex, err
			}
			p.arena.AppendChild(idx, memberIdx)
			continue
		}
		memberIdx, err := p.parseClassMember(leadingMember, node.Name, curAccess)
		if err != nil {
			return dom.NoIndex, err
		}
		if memberIdx != dom.NoIndex {
			p.arena.AppendChild(idx, memberIdx)
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return dom.NoIndex, err
	}
	if p.peekIsPunct(";") {
		p.nextSignificant()
	}
	return idx, nil
}

// parseClassMember dispatches one member declaration within a
// class/struct/union body, the same set of shapes parseItem handles at
// file scope plus function/field parsing informed by the owning class
// name and current access section.
func (p *Parser) parseClassMember(leading []string, owningClass string, access dom.Accessibility) (dom.Index, error) {
	tok := p.peekSignificant()
	if tok.Kind == lexer.Preprocessor {
		return p.parsePreprocessor(leading)
	}
	if tok.Kind == lexer.Ident {
		switch tok.Text {
		case "class", "struct", "union":
			return p.parseClassStructUnion(leading, access)
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
	idx, err := p.parseDeclarationWithClass(leading, access, owningClass)
	if err != nil {
		return dom.NoIndex, err
	}
	if idx != dom.NoIndex {
		return idx, nil
	}
	return p.parseRawCode(leading)
}

func (p *Parser) parseEnum(leading []string) (dom.Index, error) {
	p.nextSignificant() // "enum"
	if p.peekIsIdent("class") || p.peekIsIdent("struct") {
		p.nextSignificant()
	}
	name := ""
	anonymous := true
	if p.peekSignificant().Kind == lexer.Ident {
		name = p.nextSignificant().Text
		anonymous = false
	}
	underlying := ""
	if p.peekIsPunct(":") {
		p.nextSignificant()
		ty, err := p.parseType()
		if err != nil {
			return dom.NoIndex, err
		}
		underlying = ty.BaseName
	}

	el := &dom.EnumElement{Name: name, Underlying: underlying}
	if anonymous {
		el.Name = fmt.Sprintf("anonymous%d", anonCounter)
		anonCounter++
	}

	if p.peekIsPunct(";") {
		p.nextSignificant()
		return p.arena.Alloc(el), nil
	}

	if err := p.expectPunct("{"); err != nil {
		return dom.NoIndex, err
	}
	idx := p.arena.Alloc(el)
	el.LeadingComments = leading

	for {
		entryLeading, _ := p.collectLeadingTrivia()
		if p.peekIsPunct("}") {
			break
		}
		entryTok := p.nextSignificant()
		if entryTok.Kind != lexer.Ident {
			return dom.NoIndex, p.errorf(entryTok, "expected enumerator name, found %q", entryTok.Text)
		}
		entry := &dom.EnumEntry{Name: entryTok.Text}
		if p.peekIsPunct("=") {
			p.nextSignificant()
			exprTokens, err := p.collectExprTokensUntil(",", "}")
			if err != nil {
				return dom.NoIndex, err
			}
			entry.ValueExpr = exprTokens
			entry.HasExplicitValue = true
		}
		// Value/Resolved are left for modifiers.CalculateEnumValues,
		// which implements the full previous+1 and expression-reference
		// rules across the whole enum in one place.
		markEnumEntrySpecial(entry)
		entryIdx := p.arena.Alloc(entry)
		entry.LeadingComments = entryLeading
		if p.peekIsPunct(",") {
			p.nextSignificant()
		}
		if tc := p.collectTrailingComment(); tc != "" {
			entry.TrailingComments = append(entry.TrailingComments, tc)
		}
		p.arena.AppendChild(idx, entryIdx)
	}
	if err := p.expectPunct("}"); err != nil {
		return dom.NoIndex, err
	}
	if p.peekIsPunct(";") {
		p.nextSignificant()
	}
	return idx, nil
}

// markEnumEntrySpecial applies the naming conventions from
// mod_mark_special_enum_values: a trailing underscore marks an internal
// entry, a "_COUNT" suffix marks a count marker.
func markEnumEntrySpecial(e *dom.EnumEntry) {
	switch {
	case len(e.Name) > 0 && e.Name[len(e.Name)-1] == '_':
		e.Internal = true
	case len(e.Name) >= 6 && e.Name[len(e.Name)-6:] == "_COUNT":
		e.IsCount = true
	}
}

func (p *Parser) parseTypedef(leading []string) (dom.Index, error) {
	p.nextSignificant() // "typedef"
	ty, err := p.parseType()
	if err != nil {
		return dom.NoIndex, err
	}
	var name string
	if n, ok := p.takeDeclaratorName(); ok {
		name = n
	} else {
		nameTok := p.nextSignificant()
		if nameTok.Kind != lexer.Ident {
			return dom.NoIndex, p.errorf(nameTok, "expected typedef name, found %q", nameTok.Text)
		}
		name = nameTok.Text
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
	if err := p.expectPunct(";"); err != nil {
		return dom.NoIndex, err
	}
	td := &dom.Typedef{Name: name, Aliased: ty}
	idx := p.arena.Alloc(td)
	td.LeadingComments = leading
	if tc := p.collectTrailingComment(); tc != "" {
		td.TrailingComments = append(td.TrailingComments, tc)
	}
	return idx, nil
}

// parseUsingAlias handles "using Name = Type;", folding it into the
// same Typedef node kind the C emitter already knows how to print.
func (p *Parser) parseUsingAlias(leading []string) (dom.Index, error) {
	p.nextSignificant() // "using"
	nameTok := p.nextSignificant()
	if p.peekIsPunct("=") {
		p.nextSignificant()
		ty, err := p.parseType()
		if err != nil {
			return dom.NoIndex, err
		}
		if err := p.expectPunct(";"); err != nil {
			return dom.NoIndex, err
		}
		td := &dom.Typedef{Name: nameTok.Text, Aliased: ty}
		idx := p.arena.Alloc(td)
		td.LeadingComments = leading
		return idx, nil
	}
	// "using Namespace::Name;" import - not meaningful to the C
	// binding surface, keep as raw code.
	for !p.peekIsPunct(";") {
		p.nextSignificant()
	}
	p.nextSignificant()
	return p.arena.Alloc(&dom.Code{Text: "using " + nameTok.Text + ";"}), nil
}

func (p *Parser) parseTemplate(leading []string) (dom.Index, error) {
	p.nextSignificant() // "template"
	if err := p.expectPunct("<"); err != nil {
		return dom.NoIndex, err
	}
	var params []string
	cur := ""
	for !p.peekIsPunct(">") {
		tok := p.nextSignificant()
		if tok.Text == "," {
			params = append(params, cur)
			cur = ""
			continue
		}
		if cur != "" {
			cur += " "
		}
		cur += tok.Text
	}
	if cur != "" {
		params = append(params, cur)
	}
	p.nextSignificant() // ">"

	body, err := p.parseItem(nil)
	if err != nil {
		return dom.NoIndex, err
	}
	td := &dom.TemplateDeclaration{Params: params}
	idx := p.arena.Alloc(td)
	td.LeadingComments = leading
	p.arena.AppendChild(idx, body)
	return idx, nil
}

// collectExprTokensUntil concatenates raw token text up to (not
// including) a top-level occurrence of one of the stop punctuators,
// respecting nested parens.
func (p *Parser) collectExprTokensUntil(stop ...string) (string, error) {
	depth := 0
	text := ""
	for {
		tok := p.peekSignificant()
		if tok.Kind == lexer.EOF {
			return "", p.errorf(tok, "unexpected end of file in expression")
		}
		if depth == 0 && tok.Kind == lexer.Punct {
			for _, s := range stop {
				if tok.Text == s {
					return text, nil
				}
			}
		}
		if tok.Kind == lexer.Punct && (tok.Text == "(" || tok.Text == "[") {
			depth++
		}
		if tok.Kind == lexer.Punct && (tok.Text == ")" || tok.Text == "]") {
			depth--
		}
		if text != "" {
			text += " "
		}
		text += tok.Text
		p.nextSignificant()
	}
}
