package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// Window creation, message retrieval and dispatch must share one OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := LoadConfig()

	logFile, err := InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file failed: %v\n", err)
	} else {
		defer logFile.Close()
	}

	r := NewRunner(newNativeHost(), newEngine(), cfg)
	r.ConsoleAttached = func() {
		TeeLogToStderr(logFile)
	}
	return r.Run(commandLineArguments())
}
