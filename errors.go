package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItem is returned when an item breaks the item contract (empty name, negative quantity or price).
	ErrInvalidItem = errors.New("invalid item")
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDecode is matched by every error raised while decoding an inventory document.
	ErrDecode = errors.New("cannot decode inventory")
	// ErrPersist is returned when the inventory could not be written to disk.
	ErrPersist = errors.New("cannot save inventory")
)

// IndexError reports an item position outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d out of range: inventory is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// DecodeError reports a record of the inventory document that cannot be turned into an Item.
// Record is the zero based position of the record in the document.
type DecodeError struct {
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: record %d: %v", ErrDecode, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
