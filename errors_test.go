package tevclient

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSysErrorStringIncludesCode(t *testing.T) {
	got := sysErrorString(syscall.ECONNREFUSED)
	require.Contains(t, got, fmt.Sprintf("(%d)", int(syscall.ECONNREFUSED)))
}

func TestSysErrorStringUnwrapsNestedErrno(t *testing.T) {
	wrapped := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: syscall.ECONNREFUSED,
	}
	got := sysErrorString(wrapped)
	require.Contains(t, got, fmt.Sprintf("(%d)", int(syscall.ECONNREFUSED)))
}

func TestSysErrorStringTrimsLineEndings(t *testing.T) {
	got := sysErrorString(errors.New("something broke\r\n"))
	require.Equal(t, "something broke", got)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	require.NotErrorIs(t, argumentError("x"), ErrSocket)
	require.NotErrorIs(t, argumentError("x"), ErrNotConnected)
	require.ErrorIs(t, argumentError("x"), ErrArgument)
	require.ErrorIs(t, socketError("send", syscall.EPIPE), ErrSocket)
}
