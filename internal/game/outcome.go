package game

// RoundOutcome is the terminal state of a round.
type RoundOutcome int

const (
	OutcomePlaying RoundOutcome = iota
	OutcomeWon
	OutcomeLost
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// RoundStats are running counters kept by the round.
type RoundStats struct {
	RabbitsSpawned    int
	FoxesSpawned      int
	BearsSpawned      int
	BearAttempts      int
	Thrown            int
	FireRejected      int
	Hits              int
	Blocked           int
	RabbitsFed        int
	RabbitsAngry      int
	FoxesFed          int
	BearHits          int
	Teleports         int
	PowerupsDropped   int
	PowerupsCollected int
	PowerupsExpired   int
}

// RoundSummary is the end-of-round digest used by reports.
type RoundSummary struct {
	Outcome     RoundOutcome
	Level       int
	Frames      int
	Elapsed     float64
	Stats       RoundStats
	BearHealth  int // -1 when no bear was ever met
	BearLane    Lane
	Description string
}

// Summarize derives the round digest. Description is a stable
// machine-readable reason string.
func (r *Round) Summarize() RoundSummary {
	s := RoundSummary{
		Outcome:    r.outcome,
		Level:      r.level.Number,
		Frames:     r.frame,
		Elapsed:    r.elapsed,
		Stats:      r.stats,
		BearHealth: -1,
	}
	if r.lastBear != nil {
		s.BearHealth = r.lastBear.Health()
		s.BearLane = r.lastBear.Lane()
	}
	switch {
	case r.outcome == OutcomeWon:
		s.Description = "clock_claimed_after_bear_fed"
	case r.outcome == OutcomeLost:
		s.Description = "bear_reached_player"
	case r.clock != nil:
		s.Description = "clock_waiting_unclaimed"
	case r.bear != nil:
		s.Description = "bear_on_field"
	case r.stats.BearsSpawned == 0 && r.player.Ammo[AmmoHoney] == 0:
		s.Description = "no_honey_no_bear"
	default:
		s.Description = "inconclusive"
	}
	return s
}
