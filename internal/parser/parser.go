// Package parser builds the term tree the rest of the pipeline operates on
// from a lexer token stream (spec §6). Grounded on
// original_source/src/parser.rs's recursive-descent Parser, extended with
// defmacro and the quote-family special forms the original never parses.
package parser

import (
	"fmt"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/lexer"
)

// Error is a parse-stage failure (spec §7: "unexpected ')', unclosed list,
// missing macro name/params/body, stray reader marker").
type Error struct {
	Kind    string
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
}

// Help returns the rendered remediation hint (spec §7).
func (e *Error) Help() string {
	switch e.Kind {
	case "UnexpectedRightParen":
		return "remove the stray ')' or add its matching '('"
	case "UnclosedList":
		return "add the missing ')'"
	case "MalformedDefinition":
		return "defmacro needs a name, a parenthesized parameter list, and one body expression"
	default:
		return "check the surrounding expression"
	}
}

// Parse tokenizes-independent: it consumes a token stream produced by
// lexer.Tokenize and returns the top-level term sequence.
func Parse(tokens []lexer.Token) ([]ast.Term, *Error) {
	p := &parser{tokens: tokens}
	var terms []ast.Term
	for !p.atEnd() {
		t, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() (lexer.Token, bool) {
	if p.atEnd() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) parseExpression() (ast.Term, *Error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Kind: "UnexpectedEOF", Message: "unexpected end of input"}
	}
	switch tok.Kind {
	case lexer.LeftParen:
		return p.parseList()
	case lexer.Number:
		p.advance()
		return ast.Number(tok.Number), nil
	case lexer.Symbol:
		p.advance()
		return ast.Symbol(tok.Text), nil
	case lexer.String:
		p.advance()
		return ast.String(tok.Text), nil
	case lexer.Bool:
		p.advance()
		return ast.Bool(tok.Bool), nil
	case lexer.Nil:
		p.advance()
		return ast.Nil{}, nil
	case lexer.Quote:
		p.advance()
		child, err := p.parseMarkerPayload("'")
		if err != nil {
			return nil, err
		}
		return &ast.Quote{Child: child}, nil
	case lexer.Quasiquote:
		p.advance()
		child, err := p.parseMarkerPayload("`")
		if err != nil {
			return nil, err
		}
		return &ast.Quasiquote{Child: child}, nil
	case lexer.Unquote:
		p.advance()
		child, err := p.parseMarkerPayload(",")
		if err != nil {
			return nil, err
		}
		return &ast.Unquote{Child: child}, nil
	case lexer.Splice:
		p.advance()
		child, err := p.parseMarkerPayload(",@")
		if err != nil {
			return nil, err
		}
		return &ast.Splice{Child: child}, nil
	case lexer.RightParen:
		return nil, &Error{Kind: "UnexpectedRightParen", Message: "missing opening parenthesis", Line: tok.Line, Column: tok.Column}
	default:
		return nil, &Error{Kind: "UnexpectedToken", Message: fmt.Sprintf("unexpected token %s", tok.Kind), Line: tok.Line, Column: tok.Column}
	}
}

// parseMarkerPayload parses the single expression a reader marker (' ` , ,@)
// applies to; a marker at end of input is a stray reader marker.
func (p *parser) parseMarkerPayload(marker string) (ast.Term, *Error) {
	if p.atEnd() {
		return nil, &Error{Kind: "StrayReaderMarker", Message: fmt.Sprintf("%q has nothing to quote", marker)}
	}
	return p.parseExpression()
}

func (p *parser) parseList() (ast.Term, *Error) {
	open := p.advance() // consume '('

	if head, ok := p.peek(); ok && head.Kind == lexer.Symbol && head.Text == "defmacro" {
		return p.parseDefmacro(open)
	}

	var elements []ast.Term
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, &Error{Kind: "UnclosedList", Message: "list never closed", Line: open.Line, Column: open.Column}
		}
		if tok.Kind == lexer.RightParen {
			p.advance()
			break
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}

	if wrapped, ok := quoteFamilyWrapper(elements); ok {
		return wrapped, nil
	}
	return &ast.List{Elements: elements}, nil
}

// quoteFamilyWrapper recognizes the function-call spellings `(quote x)`,
// `` (quasiquote x) ``, `(unquote x)`, `(unquote-splicing x)` and produces
// the same wrapper term the short-form reader markers do (spec §6).
func quoteFamilyWrapper(elements []ast.Term) (ast.Term, bool) {
	if len(elements) != 2 {
		return nil, false
	}
	head, ok := ast.AsSymbol(elements[0])
	if !ok {
		return nil, false
	}
	switch head {
	case "quote":
		return &ast.Quote{Child: elements[1]}, true
	case "quasiquote":
		return &ast.Quasiquote{Child: elements[1]}, true
	case "unquote":
		return &ast.Unquote{Child: elements[1]}, true
	case "unquote-splicing":
		return &ast.Splice{Child: elements[1]}, true
	default:
		return nil, false
	}
}

func (p *parser) parseDefmacro(open lexer.Token) (ast.Term, *Error) {
	p.advance() // consume "defmacro"

	nameTok, ok := p.peek()
	if !ok || nameTok.Kind != lexer.Symbol {
		return nil, &Error{Kind: "MalformedDefinition", Message: "defmacro is missing its name", Line: open.Line, Column: open.Column}
	}
	p.advance()
	name := nameTok.Text

	paramsTok, ok := p.peek()
	if !ok || paramsTok.Kind != lexer.LeftParen {
		return nil, &Error{Kind: "MalformedDefinition", Message: fmt.Sprintf("defmacro %s is missing its parameter list", name), Line: open.Line, Column: open.Column}
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.peek(); !ok || tok.Kind == lexer.RightParen {
		return nil, &Error{Kind: "MalformedDefinition", Message: fmt.Sprintf("defmacro %s is missing its body", name), Line: open.Line, Column: open.Column}
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	closeTok, ok := p.peek()
	if !ok || closeTok.Kind != lexer.RightParen {
		return nil, &Error{Kind: "MalformedDefinition", Message: fmt.Sprintf("defmacro %s has more than one body expression", name), Line: open.Line, Column: open.Column}
	}
	p.advance()

	return &ast.Macro{Name: name, Parameters: params, Body: body}, nil
}

func (p *parser) parseParameterList() ([]string, *Error) {
	open := p.advance() // consume '('
	var params []string
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, &Error{Kind: "UnclosedList", Message: "parameter list never closed", Line: open.Line, Column: open.Column}
		}
		if tok.Kind == lexer.RightParen {
			p.advance()
			return params, nil
		}
		if tok.Kind != lexer.Symbol {
			return nil, &Error{Kind: "MalformedDefinition", Message: "parameter list may only contain names", Line: tok.Line, Column: tok.Column}
		}
		p.advance()
		params = append(params, tok.Text)
	}
}
