// SPDX-License-Identifier: MIT

package gml

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed GML text.
	ErrSyntax = errors.New("gml: syntax error")

	// ErrNoGraph indicates the document has no top-level graph list.
	ErrNoGraph = errors.New("gml: no graph section")

	// ErrMissingID indicates a node or edge lacks a required integer key.
	ErrMissingID = errors.New("gml: missing id")

	// ErrDuplicateID indicates two nodes share an id.
	ErrDuplicateID = errors.New("gml: duplicate node id")

	// ErrUnknownNode indicates an edge references an id no node declared.
	ErrUnknownNode = errors.New("gml: edge references unknown node")
)

// SyntaxError locates a lexical or grammatical problem. It unwraps to ErrSyntax.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gml: line %d: %s", e.Line, e.Msg)
}

// Unwrap lets errors.Is(err, ErrSyntax) match.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
