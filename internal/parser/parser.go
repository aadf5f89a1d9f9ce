package parser

import (
	"github.com/extlang/extc/internal/ast"
	"github.com/extlang/extc/internal/diagnostic"
	"github.com/extlang/extc/internal/lexer"
)

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	tokens := l.Tokenize()
	return &Parser{
		tokens: tokens,
		pos:    0,
		diags:  diagnostic.New(),
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Parse parses the token stream into a Program AST
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.check(lexer.EOF) {
		if p.check(lexer.CLASS) {
			prog.Classes = append(prog.Classes, p.parseClassDecl())
			continue
		}

		p.diags.Errorf(p.current().Line, p.current().Column,
			"unexpected token %s at top level, expected 'class'", p.current().Type)
		startPos := p.pos
		p.synchronize()
		if p.pos == startPos {
			p.advance() // ensure forward progress to avoid infinite loop
		}
	}
	return prog
}

// parseClassDecl parses: class <name> [(<parents>)] { <members> }
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	tok := p.expect(lexer.CLASS)
	name := p.expect(lexer.IDENT)

	decl := &ast.ClassDecl{
		Name:   name.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}

	if p.match(lexer.LPAREN) {
		if !p.check(lexer.RPAREN) {
			decl.Parents = append(decl.Parents, p.parseParentRef())
			for p.match(lexer.COMMA) {
				decl.Parents = append(decl.Parents, p.parseParentRef())
			}
		}
		p.expect(lexer.RPAREN)
	}

	p.expect(lexer.LBRACE)

	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		switch p.current().Type {
		case lexer.ATTR:
			decl.Attrs = append(decl.Attrs, p.parseAttrDecl())
		case lexer.DEF, lexer.STATIC, lexer.CLASSMETHOD:
			decl.Methods = append(decl.Methods, p.parseMethodDecl())
		default:
			p.diags.Errorf(p.current().Line, p.current().Column,
				"unexpected token %s in class body, expected 'attr' or 'def'",
				p.current().Type)
			startPos := p.pos
			p.synchronize()
			if p.pos == startPos {
				p.advance()
			}
		}
	}

	p.expect(lexer.RBRACE)
	return decl
}

// parseParentRef parses a single parent class name
func (p *Parser) parseParentRef() *ast.ParentRef {
	tok := p.expect(lexer.IDENT)
	return &ast.ParentRef{
		Name:   tok.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseAttrDecl parses: attr <name>: <type>;
func (p *Parser) parseAttrDecl() *ast.AttrDecl {
	tok := p.expect(lexer.ATTR)
	name := p.expect(lexer.IDENT)
	p.expect(lexer.COLON)
	typ := p.parseTypeRef()
	p.expect(lexer.SEMICOLON)

	return &ast.AttrDecl{
		Name:   name.Literal,
		Type:   typ,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseMethodDecl parses:
//
//	[static|classmethod] def <name>(<params>) [signature (<types>) -> <type>];
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	kind := ast.InstanceMethod
	tok := p.current()

	if p.match(lexer.STATIC) {
		kind = ast.StaticMethod
	} else if p.match(lexer.CLASSMETHOD) {
		kind = ast.ClassMethod
	}

	p.expect(lexer.DEF)
	name := p.expect(lexer.IDENT)

	decl := &ast.MethodDecl{
		Name:   name.Literal,
		Kind:   kind,
		Line:   tok.Line,
		Column: tok.Column,
	}

	p.expect(lexer.LPAREN)
	if !p.check(lexer.RPAREN) {
		decl.Params = append(decl.Params, p.parseParam())
		for p.match(lexer.COMMA) {
			decl.Params = append(decl.Params, p.parseParam())
		}
	}
	p.expect(lexer.RPAREN)

	if p.check(lexer.SIGNATURE) {
		decl.Signature = p.parseSignatureRef()
	}

	p.expect(lexer.SEMICOLON)
	return decl
}

// parseParam parses one underlying parameter name
func (p *Parser) parseParam() *ast.Param {
	tok := p.expect(lexer.IDENT)
	return &ast.Param{
		Name:   tok.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// parseSignatureRef parses: signature (<types>) -> <type>
func (p *Parser) parseSignatureRef() *ast.SignatureRef {
	tok := p.expect(lexer.SIGNATURE)

	sig := &ast.SignatureRef{
		Line:   tok.Line,
		Column: tok.Column,
	}

	p.expect(lexer.LPAREN)
	if !p.check(lexer.RPAREN) {
		sig.Params = append(sig.Params, p.parseTypeRef())
		for p.match(lexer.COMMA) {
			sig.Params = append(sig.Params, p.parseTypeRef())
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.ARROW)
	sig.Return = p.parseTypeRef()

	return sig
}

// parseTypeRef parses a type reference by name
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.expect(lexer.IDENT)
	return &ast.TypeRef{
		Name:   tok.Literal,
		Line:   tok.Line,
		Column: tok.Column,
	}
}
