package gocalc

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TokenEOI TokenType = iota
	TokenNumber
	TokenSymbol
	TokenIdent
)

// Token is a lexical unit. Only the field matching Type is meaningful.
type Token struct {
	Type   TokenType
	Number float64
	Symbol byte
	Ident  string
	Pos    int
}

func (t Token) IsSymbol(c byte) bool {
	return t.Type == TokenSymbol && t.Symbol == c
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOI:
		return "end-of-input"
	case TokenNumber:
		return "number " + strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenSymbol:
		return fmt.Sprintf("'%c'", t.Symbol)
	}
	return "invalid token"
}
