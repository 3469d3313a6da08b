package gocalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LexError reports input that matches no token rule.
type LexError struct {
	Char rune
	Text string // malformed number literal, if any
	Pos  int
}

func (e *LexError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("malformed number %q at position %d", e.Text, e.Pos)
	}
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos -= l.last
		l.last = 0
	}
	return err
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !isSpace(r) {
			return l.unreadRune()
		}
	}
}

// isSpace matches ASCII whitespace only; other Unicode spaces are lex errors.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSymbol(r rune) bool {
	return strings.ContainsRune("+-*/^()=", r)
}

func isIdentLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NextToken scans one token. Once the input is exhausted it keeps returning
// TokenEOI.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhite(); err != nil {
		return Token{}, err
	}
	pos := l.pos
	r, err := l.readRune()
	if err != nil {
		if err == io.EOF {
			return Token{Type: TokenEOI, Pos: pos}, nil
		}
		return Token{}, err
	}

	switch {
	case isSymbol(r):
		return Token{Type: TokenSymbol, Symbol: byte(r), Pos: pos}, nil
	case isIdentLetter(r):
		l.unreadRune()
		return l.readIdent(pos)
	case isDigit(r) || r == '.':
		l.unreadRune()
		return l.readNumber(pos)
	}
	return Token{}, &LexError{Char: r, Pos: pos}
}

func (l *Lexer) readIdent(pos int) (Token, error) {
	var buf strings.Builder
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if !isIdentLetter(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return Token{Type: TokenIdent, Ident: buf.String(), Pos: pos}, nil
}

func (l *Lexer) readNumber(pos int) (Token, error) {
	var buf strings.Builder
	decimal := false
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if r == '.' {
			if decimal {
				buf.WriteRune(r)
				return Token{}, &LexError{Char: r, Text: buf.String(), Pos: pos}
			}
			decimal = true
		} else if !isDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()
	if s == "." {
		return Token{}, &LexError{Char: '.', Text: s, Pos: pos}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals saturate to ±Inf or 0 like strtod.
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			return Token{}, &LexError{Char: rune(s[0]), Text: s, Pos: pos}
		}
	}
	return Token{Type: TokenNumber, Number: f, Pos: pos}, nil
}
