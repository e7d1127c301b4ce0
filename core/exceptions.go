package core

import (
	"errors"
	"fmt"
)

// ErrPortInUse reports that the server address is already bound by another process.
var ErrPortInUse = errors.New("port is already in use")

// PortInUseError carries the address the server failed to bind.
type PortInUseError struct {
	Addr  string
	Cause error
}

func (e *PortInUseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("listen %s: %v (is another portfolio server running?)", e.Addr, e.Cause)
	}
	return fmt.Sprintf("listen %s: port is already in use", e.Addr)
}

func (e *PortInUseError) Is(target error) bool {
	return target == ErrPortInUse
}

func (e *PortInUseError) Unwrap() error {
	return e.Cause
}
