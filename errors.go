package bookmarktree

import "fmt"

// ParseError reports that bookmark markup could not be tokenized at all.
// Structurally odd but tokenizable input never produces it; the parser
// degrades to whatever it can recover instead.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse bookmarks: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports a node id that did not resolve. Delete returns it
// for a missing target; Move returns it for a missing target or, after
// re-homing the subtree at top level, for a missing destination parent.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.ID)
}

// DecodeError reports a boundary payload that did not match the expected
// node shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode bookmark payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
