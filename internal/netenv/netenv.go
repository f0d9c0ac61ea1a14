// Package netenv owns the shared transport environment lifecycle.
//
// Some platforms require process-wide networking setup before the first
// socket is opened and matching teardown after the last one closes. Rather
// than hiding that behind static state, every client retains an explicit Env
// handle; the first retain runs the init hook, the last release runs the
// teardown hook.
package netenv

import (
	"errors"
	"sync"
)

var (
	ErrReleaseUnretained = errors.New("netenv: release without matching retain")
)

// Env is a reference-counted transport environment. The zero value is valid
// and has no hooks. Retain/Release are safe for concurrent use; the hooks
// themselves run under the lock because platform init calls are not
// guaranteed reentrant.
type Env struct {
	mu    sync.Mutex
	count uint32

	// Init runs on the first retain. A non-nil error fails that retain and
	// leaves the count at zero.
	Init func() error
	// Teardown runs on the last release.
	Teardown func()
}

// Retain acquires one reference, initializing the environment if this is the
// first live reference.
func (e *Env) Retain() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.count == 0 && e.Init != nil {
		if err := e.Init(); err != nil {
			return err
		}
	}
	e.count++
	return nil
}

// Release drops one reference, tearing the environment down when the last
// reference goes away. Releasing more times than retained is reported, never
// panicked.
func (e *Env) Release() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.count == 0 {
		return ErrReleaseUnretained
	}
	e.count--
	if e.count == 0 && e.Teardown != nil {
		e.Teardown()
	}
	return nil
}

// Refs returns the current live reference count.
func (e *Env) Refs() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

var shared Env

// Shared returns the process-default environment used by clients that do not
// inject their own. Its hooks are empty: the Go runtime already handles the
// setup the reference implementations needed (SIGPIPE suppression, socket
// subsystem startup).
func Shared() *Env {
	return &shared
}
