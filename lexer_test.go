package gocalc

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenize(input string) ([]Token, error) {
	l := NewLexer(strings.NewReader(input))
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == TokenEOI {
			return toks, nil
		}
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  []Token{{Type: TokenEOI}},
		},
		{
			input: "define x = 5",
			want: []Token{
				{Type: TokenIdent, Ident: "define"},
				{Type: TokenIdent, Ident: "x", Pos: 7},
				{Type: TokenSymbol, Symbol: '=', Pos: 9},
				{Type: TokenNumber, Number: 5, Pos: 11},
				{Type: TokenEOI, Pos: 12},
			},
		},
		{
			input: "+-*/^()=",
			want: []Token{
				{Type: TokenSymbol, Symbol: '+'},
				{Type: TokenSymbol, Symbol: '-', Pos: 1},
				{Type: TokenSymbol, Symbol: '*', Pos: 2},
				{Type: TokenSymbol, Symbol: '/', Pos: 3},
				{Type: TokenSymbol, Symbol: '^', Pos: 4},
				{Type: TokenSymbol, Symbol: '(', Pos: 5},
				{Type: TokenSymbol, Symbol: ')', Pos: 6},
				{Type: TokenSymbol, Symbol: '=', Pos: 7},
				{Type: TokenEOI, Pos: 8},
			},
		},
		{
			input: "\t2.5*kilo\v\f\r\n",
			want: []Token{
				{Type: TokenNumber, Number: 2.5, Pos: 1},
				{Type: TokenSymbol, Symbol: '*', Pos: 4},
				{Type: TokenIdent, Ident: "kilo", Pos: 5},
				{Type: TokenEOI, Pos: 13},
			},
		},
		{
			// Identifiers stop at the first character that is not a-z.
			input: "ab1",
			want: []Token{
				{Type: TokenIdent, Ident: "ab"},
				{Type: TokenNumber, Number: 1, Pos: 2},
				{Type: TokenEOI, Pos: 3},
			},
		},
		{
			input: "definex",
			want: []Token{
				{Type: TokenIdent, Ident: "definex"},
				{Type: TokenEOI, Pos: 7},
			},
		},
	}
	for _, test := range tests {
		got, err := tokenize(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: tokens mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	inputs := []string{"0", "42", "3.14", ".5", "1.", "007.25", "123456789.987654321", "0.1"}
	for _, input := range inputs {
		l := NewLexer(strings.NewReader(input))
		tok, err := l.NextToken()
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		want, err := strconv.ParseFloat(input, 64)
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != TokenNumber || tok.Number != want {
			t.Errorf("%q: want number %v but got %+v", input, want, tok)
		}
	}
}

func TestLexerHugeNumber(t *testing.T) {
	l := NewLexer(strings.NewReader("1" + strings.Repeat("0", 400)))
	tok, err := l.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if !(tok.Number > 1e308) {
		t.Errorf("want +Inf but got %v", tok.Number)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  LexError
	}{
		{input: "1.2.3", want: LexError{Char: '.', Text: "1.2.", Pos: 0}},
		{input: "x + .", want: LexError{Char: '.', Text: ".", Pos: 4}},
		{input: "..", want: LexError{Char: '.', Text: "..", Pos: 0}},
		{input: "Abc", want: LexError{Char: 'A', Pos: 0}},
		{input: "a_b", want: LexError{Char: '_', Pos: 1}},
		{input: "2 $", want: LexError{Char: '$', Pos: 2}},
		{input: "3,5", want: LexError{Char: ',', Pos: 1}},
		{input: "π", want: LexError{Char: 'π', Pos: 0}},
		{input: "1\u00a0+2", want: LexError{Char: '\u00a0', Pos: 1}},
		{input: "1 +\u20032", want: LexError{Char: '\u2003', Pos: 3}},
	}
	for _, test := range tests {
		_, err := tokenize(test.input)
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("%q: want LexError but got %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, *le); diff != "" {
			t.Errorf("%q: error mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestLexerRepeatedEOI(t *testing.T) {
	l := NewLexer(strings.NewReader(" 7 "))
	if tok, err := l.NextToken(); err != nil || tok.Type != TokenNumber {
		t.Fatalf("want number but got %+v, %v", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type != TokenEOI {
			t.Errorf("call %d: want end-of-input but got %v", i, tok)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: TokenEOI}, "end-of-input"},
		{Token{Type: TokenSymbol, Symbol: '('}, "'('"},
		{Token{Type: TokenNumber, Number: 2.5}, "number 2.5"},
		{Token{Type: TokenIdent, Ident: "x"}, "invalid token"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}
