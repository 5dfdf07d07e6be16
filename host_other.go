//go:build !windows

package main

// nativeHost is the portable stand-in for the Win32 host. Only the
// single-instance lock does real work here; there is no native window.
type nativeHost struct {
	lockFile string // overrides DataPath("runner.lock") when set
}

func newNativeHost() *nativeHost {
	return &nativeHost{}
}
