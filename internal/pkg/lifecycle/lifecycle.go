package lifecycle

// State is the coarse phase of a hosted session.
type State int

const (
	StateNew State = iota
	StateRunning
	StateSuspended
	StateStopped
	StateDisposed
)

// Lifecycle replaces implicit framework mount/unmount hooks with an
// explicit object the hosting application drives deterministically.
// Components register hooks; the host calls the transitions.
//
// Dispose is terminal and idempotent: dispose hooks run exactly once,
// and IsDisposed gates any deferred work that completes afterwards.
type Lifecycle struct {
	state     State
	onStop    []func()
	onSuspend []func()
	onResume  []func()
	onDispose []func()
}

func New() *Lifecycle {
	return &Lifecycle{state: StateNew}
}

func (l *Lifecycle) State() State {
	return l.state
}

func (l *Lifecycle) OnStop(fn func())    { l.onStop = append(l.onStop, fn) }
func (l *Lifecycle) OnSuspend(fn func()) { l.onSuspend = append(l.onSuspend, fn) }
func (l *Lifecycle) OnResume(fn func())  { l.onResume = append(l.onResume, fn) }
func (l *Lifecycle) OnDispose(fn func()) { l.onDispose = append(l.onDispose, fn) }

func (l *Lifecycle) Start() {
	if l.state == StateDisposed {
		return
	}
	l.state = StateRunning
}

// Suspend parks the session (the host keeps it rendered, e.g. a cached
// view); resources are not released.
func (l *Lifecycle) Suspend() {
	if l.state != StateRunning {
		return
	}
	l.state = StateSuspended
	for _, fn := range l.onSuspend {
		fn()
	}
}

func (l *Lifecycle) Resume() {
	if l.state != StateSuspended {
		return
	}
	l.state = StateRunning
	for _, fn := range l.onResume {
		fn()
	}
}

func (l *Lifecycle) Stop() {
	if l.state == StateDisposed || l.state == StateStopped {
		return
	}
	l.state = StateStopped
	for _, fn := range l.onStop {
		fn()
	}
}

// Dispose permanently tears the session down, releasing resources.
func (l *Lifecycle) Dispose() {
	if l.state == StateDisposed {
		return
	}
	l.state = StateDisposed
	for _, fn := range l.onDispose {
		fn()
	}
}

func (l *Lifecycle) IsDisposed() bool {
	return l.state == StateDisposed
}
