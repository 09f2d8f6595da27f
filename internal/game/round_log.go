package game

import (
	"fmt"
	"sort"
	"strings"
)

// RoundLogEntry is one recorded event during a round.
type RoundLogEntry struct {
	Frame    int
	Actor    string  // label e.g. "R3", "B12", "P", or "--" for round-wide events
	Category string  // spawn, fire, hit, state, powerup, effect, bear, round, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] B3   bear      teleport_start   lane=middle
func (e RoundLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-4s %-9s %-16s %s",
		e.Frame, e.Actor, e.Category, e.Key, e.Value)
}

// RoundLog collects structured events for a round. Unlike the on-screen
// feed it is unbounded and machine-readable.
type RoundLog struct {
	entries []RoundLogEntry
	verbose bool
}

// NewRoundLog creates a RoundLog. Verbose mode also records per-frame
// movement entries.
func NewRoundLog(verbose bool) *RoundLog {
	return &RoundLog{verbose: verbose}
}

// Add records a new entry.
func (rl *RoundLog) Add(frame int, actor, category, key, value string, numVal float64) {
	rl.entries = append(rl.entries, RoundLogEntry{
		Frame:    frame,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (rl *RoundLog) AddVerbose(frame int, actor, category, key, value string, numVal float64) {
	if !rl.verbose {
		return
	}
	rl.Add(frame, actor, category, key, value, numVal)
}

func (rl *RoundLog) Entries() []RoundLogEntry {
	return rl.entries
}

// logQuery selects entries; empty fields match anything.
type logQuery struct {
	category, key, substr string
}

func (q logQuery) matches(e RoundLogEntry) bool {
	return (q.category == "" || e.Category == q.category) &&
		(q.key == "" || e.Key == q.key) &&
		(q.substr == "" || strings.Contains(e.Value, q.substr))
}

func (rl *RoundLog) collect(keep func(RoundLogEntry) bool) []RoundLogEntry {
	var out []RoundLogEntry
	for _, e := range rl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns entries of category and key; empty matches any.
func (rl *RoundLog) Filter(category, key string) []RoundLogEntry {
	return rl.collect(logQuery{category: category, key: key}.matches)
}

// FilterActor returns entries for one creature label.
func (rl *RoundLog) FilterActor(label string) []RoundLogEntry {
	return rl.collect(func(e RoundLogEntry) bool { return e.Actor == label })
}

// FilterFrameRange returns entries within [from, to]. Entries are appended
// in frame order, so the window is found by binary search.
func (rl *RoundLog) FilterFrameRange(from, to int) []RoundLogEntry {
	lo := sort.Search(len(rl.entries), func(i int) bool { return rl.entries[i].Frame >= from })
	hi := sort.Search(len(rl.entries), func(i int) bool { return rl.entries[i].Frame > to })
	if lo >= hi {
		return nil
	}
	return append([]RoundLogEntry(nil), rl.entries[lo:hi]...)
}

func (rl *RoundLog) CountCategory(category, key string) int {
	q := logQuery{category: category, key: key}
	n := 0
	for _, e := range rl.entries {
		if q.matches(e) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry of category and key.
func (rl *RoundLog) LastOf(category, key string) (RoundLogEntry, bool) {
	q := logQuery{category: category, key: key}
	for i := len(rl.entries) - 1; i >= 0; i-- {
		if q.matches(rl.entries[i]) {
			return rl.entries[i], true
		}
	}
	return RoundLogEntry{}, false
}

// HasEntry reports whether any entry matches category, key and a value
// substring.
func (rl *RoundLog) HasEntry(category, key, valueSubstr string) bool {
	q := logQuery{category, key, valueSubstr}
	for _, e := range rl.entries {
		if q.matches(e) {
			return true
		}
	}
	return false
}

func writeEntries(sb *strings.Builder, entries []RoundLogEntry) {
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
}

// Format renders the whole log, one line per entry.
func (rl *RoundLog) Format() string {
	var sb strings.Builder
	writeEntries(&sb, rl.entries)
	return sb.String()
}

// FormatRange renders the entries of frames [from, to].
func (rl *RoundLog) FormatRange(from, to int) string {
	var sb strings.Builder
	writeEntries(&sb, rl.FilterFrameRange(from, to))
	return sb.String()
}

// Summary returns a short human-readable digest of the round so far.
func (rl *RoundLog) Summary(r *Round) string {
	var sb strings.Builder
	s := r.Stats()
	fmt.Fprintf(&sb, "--- Summary at F=%04d (%.1fs) level %d %s ---\n",
		r.Frame(), r.Elapsed(), r.Level().Number, r.Outcome())
	fmt.Fprintf(&sb, "spawned: rabbits=%d foxes=%d bears=%d\n", s.RabbitsSpawned, s.FoxesSpawned, s.BearsSpawned)
	fmt.Fprintf(&sb, "thrown: %d  hits: %d  blocked: %d\n", s.Thrown, s.Hits, s.Blocked)
	fmt.Fprintf(&sb, "fed: rabbits=%d foxes=%d  angry rabbits: %d\n", s.RabbitsFed, s.FoxesFed, s.RabbitsAngry)
	fmt.Fprintf(&sb, "powerups: dropped=%d collected=%d expired=%d\n", s.PowerupsDropped, s.PowerupsCollected, s.PowerupsExpired)
	p := r.Player()
	fmt.Fprintf(&sb, "ammo: carrot=inf berry=%d honey=%d  selected=%s\n", p.Ammo[AmmoBerry], p.Ammo[AmmoHoney], p.Selected)
	if b := r.Bear(); b != nil {
		fmt.Fprintf(&sb, "bear %s: health=%d state=%s lane=%s x=%.0f\n", b.Label(), b.Health(), b.State(), b.Lane(), b.Bounds().X)
	}
	fmt.Fprintf(&sb, "bear: hits=%d teleports=%d\n", s.BearHits, s.Teleports)
	return sb.String()
}
