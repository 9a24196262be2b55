package entity

// timeEpsilon absorbs float drift when comparing accumulated time to a threshold.
const timeEpsilon = 1e-9

// Phase is a small state machine: the current state and the time spent in it.
type Phase[S comparable] struct {
	State   S
	Elapsed float64
}

// Set enters a state and restarts its timer.
func (p *Phase[S]) Set(s S) {
	p.State = s
	p.Elapsed = 0
}

// Tick advances the time spent in the current state.
func (p *Phase[S]) Tick(dt float64) {
	p.Elapsed += dt
}

// Is reports whether the machine is in state s.
func (p Phase[S]) Is(s S) bool {
	return p.State == s
}

// Done reports whether the current state has lasted at least d seconds.
func (p Phase[S]) Done(d float64) bool {
	return p.Elapsed+timeEpsilon >= d
}
