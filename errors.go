// errors.go — error kinds surfaced by the domain subsystem
//
// Four outcomes, three of them errors:
//
//   - not-found is NOT an error here. Resolution methods return an ok flag
//     and callers branch on absence; silence up the parent chain is the
//     mechanism, not a failure.
//   - *ReferenceError: thrown only by the convenience "find" entry points,
//     carrying the fixed AVM diagnostic code so the interpreter can surface
//     it as a catchable script-level ReferenceError.
//   - ErrUninitiatedName: caller misuse — a multiname with no local name was
//     passed where one is required.
//   - *RangeError: domain-memory access outside the buffer's current bounds.
//
// A missing memory region on a fully-initialized domain is none of these:
// it is a construction-order bug and panics (see Domain.Memory).
package avm2

import (
	"errors"
	"fmt"
)

// ReferenceError reports a failed mandatory name lookup. Code is the AVM
// error number embedded in the message the player shows.
type ReferenceError struct {
	Code int
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("ReferenceError: Error #%d: Variable %s is not defined.", e.Code, e.Name)
}

func referenceError(name string) *ReferenceError {
	return &ReferenceError{Code: 1065, Name: name}
}

// RangeError reports an out-of-bounds domain-memory access.
type RangeError struct {
	Code int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("RangeError: Error #%d: The specified range is invalid.", e.Code)
}

func rangeError() *RangeError {
	return &RangeError{Code: 1506}
}

// ErrUninitiatedName marks an attempt to resolve a multiname that carries no
// local name. This is caller misuse, not a runtime condition.
var ErrUninitiatedName = errors.New("attempted to resolve uninitiated multiname")
