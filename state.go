package main

// State is a step in the runner's process lifecycle.
type State int

const (
	StateStarting State = iota
	StateGuardCheck
	StateExitDuplicate
	StateInitializing
	StateWindowCreated
	StateRunning
	StateShuttingDown
	StateTerminated
)

var stateNames = map[State]string{
	StateStarting:      "STARTING",
	StateGuardCheck:    "GUARD_CHECK",
	StateExitDuplicate: "EXIT_DUPLICATE",
	StateInitializing:  "INITIALIZING",
	StateWindowCreated: "WINDOW_CREATED",
	StateRunning:       "RUNNING",
	StateShuttingDown:  "SHUTTING_DOWN",
	StateTerminated:    "TERMINATED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// allowedTransitions lists the legal next states for each state.
var allowedTransitions = map[State][]State{
	StateStarting:      {StateGuardCheck},
	StateGuardCheck:    {StateExitDuplicate, StateInitializing},
	StateExitDuplicate: {StateTerminated},
	StateInitializing:  {StateWindowCreated, StateShuttingDown},
	StateWindowCreated: {StateRunning},
	StateRunning:       {StateShuttingDown},
	StateShuttingDown:  {StateTerminated},
}

func canTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// emitStateChange notifies the observer, if any. Runs synchronously on the
// UI thread; observers must not block.
func (r *Runner) emitStateChange(from, to State) {
	if r.OnStateChange != nil {
		r.OnStateChange(from, to)
	}
}
