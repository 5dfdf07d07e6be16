//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// commandLineArguments re-splits the raw process command line with the same
// rules as CommandLineToArgvW so the engine sees exactly what the shell passed.
func commandLineArguments() []string {
	raw := windows.UTF16PtrToString(windows.GetCommandLine())
	argv, err := windows.DecomposeCommandLine(raw)
	if err != nil {
		Log.Error("decompose command line failed, using os.Args", "error", err)
		return entrypointArguments(os.Args)
	}
	return entrypointArguments(argv)
}
