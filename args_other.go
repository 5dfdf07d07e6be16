//go:build !windows

package main

import "os"

func commandLineArguments() []string {
	return entrypointArguments(os.Args)
}
