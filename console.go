package main

// consoleHost is the slice of the OS the console attacher needs.
type consoleHost interface {
	// AttachParentConsole attaches to the console of the launching process,
	// e.g. a terminal. It fails when there is none.
	AttachParentConsole() bool
	IsDebuggerPresent() bool
	// CreateConsole allocates a new console and points stdio at it.
	CreateConsole() error
}

// attachConsole makes diagnostic output visible: it reuses the parent's
// console when there is one, and otherwise allocates one only under a
// debugger. Reports whether stdio now reaches a console.
func attachConsole(h consoleHost) bool {
	if h.AttachParentConsole() {
		return true
	}
	if !h.IsDebuggerPresent() {
		return false
	}
	if err := h.CreateConsole(); err != nil {
		Log.Error("allocate console failed", "error", err)
		return false
	}
	return true
}
