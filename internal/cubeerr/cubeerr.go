// Package cubeerr defines the error taxonomy shared across the move,
// facelet, sticker and commutator packages.
package cubeerr

import "fmt"

// Kind identifies which validation failed.
type Kind int

const (
	InvalidMove Kind = iota
	InvalidCornerString
	InvalidEdgeString
	InvalidThreeCycle
)

func (k Kind) message() string {
	switch k {
	case InvalidMove:
		return "invalid move"
	case InvalidCornerString:
		return "invalid corner string"
	case InvalidEdgeString:
		return "invalid edge string"
	case InvalidThreeCycle:
		return "invalid three-cycle"
	default:
		return "unknown error"
	}
}

// Error carries the offending token alongside the failure Kind.
type Error struct {
	Kind  Kind
	Token string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.message(), e.Token)
}

// Is reports whether target is an *Error with the same Kind, regardless
// of Token, so callers can write errors.Is(err, cubeerr.ErrInvalidMove).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an *Error for the given kind and offending token.
func New(kind Kind, token string) *Error {
	return &Error{Kind: kind, Token: token}
}

// Sentinels for errors.Is comparisons; their Token is ignored by Is.
var (
	ErrInvalidMove         = &Error{Kind: InvalidMove}
	ErrInvalidCornerString = &Error{Kind: InvalidCornerString}
	ErrInvalidEdgeString   = &Error{Kind: InvalidEdgeString}
	ErrInvalidThreeCycle   = &Error{Kind: InvalidThreeCycle}
)
