// SPDX-License-Identifier: MIT

package gml

import (
	"fmt"
	"io"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindList
)

// Value is one GML value: a number, a string or a nested key/value list.
type Value struct {
	Kind   Kind
	Number float64
	Text   string // raw token for numbers, content for strings
	List   []Pair
}

// Pair is one key/value entry. Keys may repeat (node, edge).
type Pair struct {
	Key   string
	Value Value
}

// Int returns the value as an integer when it is a whole number.
func (v Value) Int() (int, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	if i, err := strconv.Atoi(v.Text); err == nil {
		return i, true
	}
	if v.Number == float64(int(v.Number)) {
		return int(v.Number), true
	}
	return 0, false
}

// Get returns the first value stored under key in a list value.
func (v Value) Get(key string) (Value, bool) {
	for _, p := range v.List {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Parse reads a whole GML document into its top-level list.
func Parse(r io.Reader) ([]Pair, error) {
	return parseList(newLexer(r), false)
}

// parseList reads key/value pairs until ']' (nested) or end of input.
func parseList(l *lexer, nested bool) ([]Pair, error) {
	var out []Pair
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEOF:
			if nested {
				return nil, &SyntaxError{Line: tok.line, Msg: "missing ']'"}
			}
			return out, nil
		case tokClose:
			if !nested {
				return nil, &SyntaxError{Line: tok.line, Msg: "unbalanced ']'"}
			}
			return out, nil
		case tokKey:
			v, err := parseValue(l)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", tok.text, err)
			}
			out = append(out, Pair{Key: tok.text, Value: v})
		default:
			return nil, &SyntaxError{Line: tok.line, Msg: "expected key, found " + tok.kind.String()}
		}
	}
}

func parseValue(l *lexer) (Value, error) {
	tok, err := l.next()
	if err != nil {
		return Value{}, err
	}
	switch tok.kind {
	case tokNumber:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return Value{}, &SyntaxError{Line: tok.line, Msg: "bad number " + strconv.Quote(tok.text)}
		}
		return Value{Kind: KindNumber, Number: f, Text: tok.text}, nil
	case tokString:
		return Value{Kind: KindString, Text: tok.text}, nil
	case tokOpen:
		list, err := parseList(l, true)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindList, List: list}, nil
	default:
		return Value{}, &SyntaxError{Line: tok.line, Msg: "expected value, found " + tok.kind.String()}
	}
}
