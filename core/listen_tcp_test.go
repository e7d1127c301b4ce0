package core

import (
	"errors"
	"net"
	"testing"
)

func TestListenTCP_FreePort(t *testing.T) {
	ln, err := ListenTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("ListenTCP: %v", err)
	}
	defer ln.Close()

	if ln.Addr().(*net.TCPAddr).Port == 0 {
		t.Fatalf("expected an assigned port")
	}
}

func TestListenTCP_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	ln, err := ListenTCP("127.0.0.1", port)
	if err == nil {
		ln.Close()
		t.Fatalf("expected error for a bound port")
	}
	if !errors.Is(err, ErrPortInUse) {
		t.Fatalf("expected ErrPortInUse, got %v", err)
	}

	var pe *PortInUseError
	if !errors.As(err, &pe) || pe.Addr == "" {
		t.Fatalf("expected *PortInUseError with address, got %#v", err)
	}
}
