package types

import "errors"

// Store operation errors. Every store failure wraps one of these sentinels;
// callers match with errors.Is and apply the log-and-continue policy at the
// smallest possible scope.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreClosed      = errors.New("store is closed")
	ErrSchema           = errors.New("schema creation failed")
	ErrBindMismatch     = errors.New("bind value count mismatch")
	ErrInsert           = errors.New("insert failed")
	ErrDelete           = errors.New("delete failed")
	ErrCategoryUnknown  = errors.New("unknown category")
	ErrTableUnknown     = errors.New("unknown table")
)
