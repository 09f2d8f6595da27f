package game

// FixedStep is the frame length the headless harness steps with.
const FixedStep = 1.0 / FrameRate

// Pilot issues commands and clicks for a round once per frame, before the
// round is stepped. The headless report and demo mode drive rounds with one.
type Pilot interface {
	Drive(r *Round)
}

// RunFrames advances the round n fixed-length frames. Stops early once the
// round is decided.
func (r *Round) RunFrames(n int) {
	for i := 0; i < n && r.outcome == OutcomePlaying; i++ {
		r.Step(FixedStep)
	}
}

// RunUntil advances the round up to maxFrames, stopping early if predicate
// returns true. Returns the frame at which the predicate was satisfied, or -1.
func (r *Round) RunUntil(predicate func(*Round) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		r.Step(FixedStep)
		if predicate(r) {
			return r.frame
		}
	}
	return -1
}

// RunPiloted lets p play for up to maxFrames and returns the frames used.
func (r *Round) RunPiloted(p Pilot, maxFrames int) int {
	start := r.frame
	for i := 0; i < maxFrames && r.outcome == OutcomePlaying; i++ {
		p.Drive(r)
		r.Step(FixedStep)
	}
	return r.frame - start
}
