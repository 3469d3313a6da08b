package gocalc

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
)

const defineKeyword = "define"

// ParseError reports a lookahead token that does not fit the grammar rule
// being matched.
type ParseError struct {
	Rule     string
	Expected string
	Got      Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("in rule %s: expected %s, got %v", e.Rule, e.Expected, e.Got)
}

// Parser builds one Statement from a token stream with a single token of
// lookahead.
type Parser struct {
	lexer     *Lexer
	lookahead Token
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// ParseString parses a single statement from s.
func ParseString(s string) (Statement, error) {
	return NewParser(strings.NewReader(s)).ParseStatement()
}

func (p *Parser) scan() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.lookahead = tok
	return nil
}

func (p *Parser) fail(rule, expected string) error {
	return &ParseError{Rule: rule, Expected: expected, Got: p.lookahead}
}

// ParseStatement parses the whole input as one statement:
//
//	root       := "define" Identifier "=" expression | expression
//	expression := term (("+"|"-") term)*
//	term       := factor (("*"|"/") factor)*
//	factor     := "+" factor | "-" factor | atom
//	atom       := primary ("^" factor)?
//	primary    := Number | Identifier | "(" expression ")"
func (p *Parser) ParseStatement() (Statement, error) {
	if err := p.scan(); err != nil {
		return nil, err
	}

	var stmt Statement
	if p.lookahead.Type == TokenIdent && p.lookahead.Ident == defineKeyword {
		if err := p.scan(); err != nil {
			return nil, err
		}
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		stmt = def
	} else {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ExpressionStatement{Expr: expr}
	}

	if p.lookahead.Type != TokenEOI {
		return nil, p.fail("root", "end-of-input")
	}
	log.LogVf("parsed %v", stmt)
	return stmt, nil
}

func (p *Parser) parseDefinition() (*VarDefinition, error) {
	if p.lookahead.Type != TokenIdent {
		return nil, p.fail("definition", "identifier")
	}
	name := p.lookahead.Ident
	if err := p.scan(); err != nil {
		return nil, err
	}
	if !p.lookahead.IsSymbol('=') {
		return nil, p.fail("definition", "'='")
	}
	if err := p.scan(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VarDefinition{Name: name, Value: value}, nil
}

func (p *Parser) parseExpression() (Expression, error) {
	if p.lookahead.IsSymbol(')') {
		return nil, p.fail("expression", "number, identifier, '+', '-' or '('")
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.lookahead.IsSymbol('+') || p.lookahead.IsSymbol('-') {
		op := OpAdd
		if p.lookahead.Symbol == '-' {
			op = OpSubtract
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = NewBinary(op, left, right)
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.lookahead.IsSymbol('*') || p.lookahead.IsSymbol('/') {
		op := OpMultiply
		if p.lookahead.Symbol == '/' {
			op = OpDivide
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = NewBinary(op, left, right)
	}
	return left, nil
}

// parseFactor handles unary signs. The sign wraps the whole atom, so -2^2
// is -(2^2).
func (p *Parser) parseFactor() (Expression, error) {
	switch {
	case p.lookahead.IsSymbol('+'):
		if err := p.scan(); err != nil {
			return nil, err
		}
		return p.parseFactor()
	case p.lookahead.IsSymbol('-'):
		if err := p.scan(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &Negate{Operand: operand}, nil
	case p.lookahead.Type == TokenNumber, p.lookahead.Type == TokenIdent, p.lookahead.IsSymbol('('):
		return p.parseAtom()
	}
	return nil, p.fail("factor", "number, identifier, '+', '-' or '('")
}

func (p *Parser) parseAtom() (Expression, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.lookahead.IsSymbol('^') {
		return base, nil
	}
	if err := p.scan(); err != nil {
		return nil, err
	}
	// Right-associative: the exponent is a full factor, which may itself
	// contain another '^'.
	exp, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return NewBinary(OpExponentiate, base, exp), nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	switch {
	case p.lookahead.Type == TokenNumber:
		n := &Literal{Value: p.lookahead.Number}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return n, nil
	case p.lookahead.Type == TokenIdent:
		n := &VariableRef{Name: p.lookahead.Ident}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return n, nil
	case p.lookahead.IsSymbol('('):
		if err := p.scan(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.lookahead.IsSymbol(')') {
			return nil, p.fail("primary", "')'")
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return expr, nil
	}
	return nil, p.fail("primary", "number, identifier or '('")
}
