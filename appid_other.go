//go:build !windows

package main

// Desktop identity comes from the .desktop file / bundle on these platforms.
func (h *nativeHost) SetAppUserModelID(id string) error { return nil }
