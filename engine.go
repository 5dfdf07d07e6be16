package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Project describes the bundled application handed to the engine.
type Project struct {
	AssetsPath     string
	EntrypointArgs []string
}

// NewProject copies args so later changes by the caller cannot leak in.
func NewProject(assetsPath string, args []string) Project {
	return Project{
		AssetsPath:     assetsPath,
		EntrypointArgs: append([]string{}, args...),
	}
}

// Engine is everything the runner knows about the embedded UI engine.
type Engine interface {
	LoadAssetBundle(path string) error
	SetEntrypointArguments(args []string)
	// AttachSurface creates the engine's view as a child of parent, sized to
	// the parent's client area.
	AttachSurface(parent uintptr, size Size) (Surface, error)
}

// Surface is the engine view living inside the app window.
type Surface interface {
	// HandleMessage gives the engine first refusal on top-level window
	// messages.
	HandleMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, bool)
	Resize(size Size)
	Focus()
	Close()
}

var errMissingEntrypoint = errors.New("asset bundle has no index.html")

// assetBundle holds the state every engine shares: where the bundle lives and
// what the entry point gets.
type assetBundle struct {
	dir  string
	args []string
}

// LoadAssetBundle resolves path against the executable directory and checks
// the bundle has an entry document.
func (b *assetBundle) LoadAssetBundle(path string) error {
	dir, err := resolveAssetsDir(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(filepath.Join(dir, "index.html"))
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", errMissingEntrypoint, dir)
	}
	b.dir = dir
	return nil
}

func (b *assetBundle) SetEntrypointArguments(args []string) {
	b.args = append([]string{}, args...)
}

// resolveAssetsDir anchors relative bundle paths at the executable, not the
// working directory, so shortcuts launched from elsewhere still find it.
func resolveAssetsDir(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), path), nil
}

// entrypointScript publishes the arguments to the page before any of its
// scripts run.
func entrypointScript(args []string) (string, error) {
	if args == nil {
		args = []string{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("window.__entrypointArgs = Object.freeze(%s);", data), nil
}
