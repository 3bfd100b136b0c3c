package store

import "fmt"

// IndexError reports an edit or delete aimed at a task index that does
// not exist. Indices shift after every insertion or deletion, so a
// stale index from an earlier listing lands here; callers must re-fetch
// the list after any mutating call. No mutation happens on this error.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task index %d out of range (have %d tasks)", e.Index, e.Len)
}

// RowWarning is a non-fatal problem with a single row during load or
// import. The row is skipped and the operation continues.
type RowWarning struct {
	Line   int
	Reason string
}

func (w RowWarning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return w.Reason
}
