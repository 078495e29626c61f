package fol

import "errors"

// ErrUnsupportedClause is returned when a traversal meets a node kind its
// rule set has no case for. The clause algebra is closed, so this signals a
// precondition violation and is always a hard failure, never skipped.
var ErrUnsupportedClause = errors.New("unsupported clause kind")
