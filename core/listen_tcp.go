package core

import (
	"net"
	"strconv"
)

// ListenTCP binds host:port, turning an address-in-use failure into a
// *PortInUseError so callers can print a useful hint.
func ListenTCP(host string, port int) (net.Listener, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	listener, err := net.Listen("tcp", addr)
	if err == nil {
		return listener, nil
	}
	if isAddrInUse(err) {
		return nil, &PortInUseError{Addr: addr, Cause: err}
	}
	return nil, err
}
