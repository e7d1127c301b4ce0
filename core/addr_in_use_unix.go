//go:build !windows

package core

import (
	"errors"
	"syscall"
)

// isAddrInUse matches EADDRINUSE through any *net.OpError wrapping.
func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
