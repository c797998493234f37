// SPDX-License-Identifier: MIT

package gml

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokKey
	tokNumber
	tokString
	tokOpen
	tokClose
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokKey:
		return "key"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokOpen:
		return "'['"
	case tokClose:
		return "']'"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	text string
	line int
}

// lexer splits GML into keys, numbers, quoted strings and brackets.
// '#' starts a comment running to the end of the line.
type lexer struct {
	r    *bufio.Reader
	line int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if c == '\n' {
		l.line++
	}
	return c, err
}

func (l *lexer) unread(c rune) {
	if c == '\n' {
		l.line--
	}
	_ = l.r.UnreadRune()
}

func (l *lexer) next() (token, error) {
	for {
		c, err := l.read()
		if errors.Is(err, io.EOF) {
			return token{kind: tokEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, err
		}

		switch {
		case unicode.IsSpace(c):
			continue
		case c == '#':
			if _, err := l.r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
				return token{}, err
			}
			l.line++
			continue
		case c == '[':
			return token{kind: tokOpen, text: "[", line: l.line}, nil
		case c == ']':
			return token{kind: tokClose, text: "]", line: l.line}, nil
		case c == '"':
			return l.str()
		case c == '-' || c == '+' || c == '.' || unicode.IsDigit(c):
			l.unread(c)
			return l.run(tokNumber, isNumberRune)
		case c == '_' || unicode.IsLetter(c):
			l.unread(c)
			return l.run(tokKey, isKeyRune)
		default:
			return token{}, &SyntaxError{Line: l.line, Msg: "unexpected character " + string(c)}
		}
	}
}

// run consumes the longest prefix accepted by ok.
func (l *lexer) run(kind tokenKind, ok func(rune) bool) (token, error) {
	var sb strings.Builder
	line := l.line
	for {
		c, err := l.read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return token{}, err
		}
		if !ok(c) {
			l.unread(c)
			break
		}
		sb.WriteRune(c)
	}

	return token{kind: kind, text: sb.String(), line: line}, nil
}

// str reads a quoted string; the opening quote is already consumed.
// GML has no escape sequences; entities like &amp; are kept verbatim.
func (l *lexer) str() (token, error) {
	var sb strings.Builder
	line := l.line
	for {
		c, err := l.read()
		if errors.Is(err, io.EOF) {
			return token{}, &SyntaxError{Line: line, Msg: "unterminated string"}
		}
		if err != nil {
			return token{}, err
		}
		if c == '"' {
			return token{kind: tokString, text: sb.String(), line: line}, nil
		}
		sb.WriteRune(c)
	}
}

func isNumberRune(c rune) bool {
	return unicode.IsDigit(c) || strings.ContainsRune("+-.eE", c)
}

func isKeyRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
