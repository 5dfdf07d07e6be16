package main

// Host is everything the runner needs from the operating system.
type Host interface {
	instanceHost
	consoleHost
	runtimeHost
	windowHost
	messagePump
}

// Runner drives one process lifetime: guard, initialize, create the window,
// pump messages, tear down.
type Runner struct {
	host   Host
	engine Engine
	cfg    *RunnerConfig

	// OnStateChange observes lifecycle transitions.
	OnStateChange func(from, to State)
	// ConsoleAttached runs once stdio reaches a console.
	ConsoleAttached func()

	state  State
	lock   *instanceLock
	window *AppWindow

	// teardown runs LIFO on every exit path past the guard.
	teardown []func()
}

// NewRunner creates a runner in the STARTING state.
func NewRunner(host Host, engine Engine, cfg *RunnerConfig) *Runner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Runner{host: host, engine: engine, cfg: cfg, state: StateStarting}
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Window returns the app window, nil before initialization.
func (r *Runner) Window() *AppWindow {
	return r.window
}

// Run executes the lifecycle and returns the process exit code. args are the
// entry-point arguments, executable name already stripped.
// A runner runs once; later calls return exitFailure and touch nothing.
func (r *Runner) Run(args []string) int {
	if r.state != StateStarting {
		Log.Error("runner already used", "state", r.state)
		return exitFailure
	}
	r.transition(StateGuardCheck)
	guard, err := ensureSingleInstance(r.host, instanceMutex, windowClassName)
	if err != nil {
		// Same as a failed CreateMutex without ERROR_ALREADY_EXISTS: carry on
		// as the first instance.
		Log.Error("single-instance check failed", "error", err)
	}
	if guard.Duplicate {
		Log.Info("already running, handed focus to existing window", "hwnd", guard.Activated)
		r.transition(StateExitDuplicate)
		r.transition(StateTerminated)
		return exitSuccess
	}
	r.lock = guard.Lock

	r.transition(StateInitializing)
	code := r.initializeAndRun(args)

	r.transition(StateShuttingDown)
	r.runTeardown()
	r.transition(StateTerminated)
	return code
}

func (r *Runner) initializeAndRun(args []string) int {
	r.tuneScheduling()

	if attachConsole(r.host) && r.ConsoleAttached != nil {
		r.ConsoleAttached()
	}

	if err := r.host.InitCOM(); err != nil {
		Log.Error("COM initialization failed", "error", err)
	} else {
		r.addTeardown(r.host.UninitCOM)
	}

	if err := r.host.SetAppUserModelID(appUserModelID); err != nil {
		Log.Error("set AppUserModelID failed", "id", appUserModelID, "error", err)
	}

	project := NewProject(r.cfg.AssetsDir, args)
	r.window = NewAppWindow(r.host, r.engine, project)
	if err := r.window.Create(r.cfg.Title, r.cfg.Origin(), r.cfg.Size()); err != nil {
		Log.Error("window creation failed", "error", err)
		return exitFailure
	}
	r.addTeardown(r.window.Destroy)
	r.window.SetQuitOnClose(true)
	r.transition(StateWindowCreated)

	r.transition(StateRunning)
	return runMessageLoop(r.host)
}

// tuneScheduling raises timer resolution and process priority.
func (r *Runner) tuneScheduling() {
	if ms := r.cfg.TimerResolutionMs; ms > 0 {
		if err := r.host.BeginTimerPeriod(ms); err != nil {
			Log.Error("raise timer resolution failed", "ms", ms, "error", err)
		} else {
			r.addTeardown(func() { r.host.EndTimerPeriod(ms) })
		}
	}
	if r.cfg.IsHighPriority() {
		if err := r.host.RaisePriority(); err != nil {
			Log.Error("raise process priority failed", "error", err)
		}
	}
}

func (r *Runner) addTeardown(fn func()) {
	r.teardown = append(r.teardown, fn)
}

func (r *Runner) runTeardown() {
	for i := len(r.teardown) - 1; i >= 0; i-- {
		r.teardown[i]()
	}
	r.teardown = nil
}

func (r *Runner) transition(to State) {
	from := r.state
	if !canTransition(from, to) {
		Log.Error("illegal lifecycle transition", "from", from, "to", to)
	}
	r.state = to
	Log.Debug("lifecycle", "from", from, "to", to)
	r.emitStateChange(from, to)
}
