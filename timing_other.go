//go:build !windows

package main

// Timer resolution is already fine-grained on these platforms.
func (h *nativeHost) BeginTimerPeriod(ms uint32) error { return nil }
func (h *nativeHost) EndTimerPeriod(ms uint32)         {}

// RaisePriority is left to the user (nice/renice) on these platforms.
func (h *nativeHost) RaisePriority() error { return nil }
