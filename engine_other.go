//go:build !windows

package main

// headlessEngine validates the bundle but has no view to show.
type headlessEngine struct {
	assetBundle
}

func newEngine() Engine {
	return &headlessEngine{}
}

func (e *headlessEngine) AttachSurface(parent uintptr, size Size) (Surface, error) {
	return nil, errNoNativeWindow
}
