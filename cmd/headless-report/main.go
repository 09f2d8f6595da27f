package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Food-Throw/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	summary  game.RoundSummary

	firstBearAttemptFrame int
	firstBearFrame        int
	firstBearHitFrame     int
	bearDefeatedFrame     int
	clockFrame            int

	teleports   int
	blocked     int
	effects     int
	actorSpawns map[string]int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var level int
	var copyOut bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot rounds")
	flag.IntVar(&frames, "frames", 60*180, "frame cap per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&level, "level", 1, "level to play (1-3)")
	flag.BoolVar(&copyOut, "copy", false, "also copy the report to the clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if level < 1 || level > game.LevelCount() {
		fmt.Printf("error: -level must be 1..%d\n", game.LevelCount())
		return
	}

	var out strings.Builder
	w := io.MultiWriter(os.Stdout, &out)

	lv := game.LevelByNumber(level)
	fmt.Fprintf(w, "=== Headless Round Report ===\n")
	fmt.Fprintf(w, "level=%d (%s) runs=%d frames=%d seed_base=%d seed_step=%d\n\n", lv.Number, lv.Name, runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, level, frames)
		all = append(all, stats)
		printRun(w, stats)
	}
	printAggregate(w, all)

	if copyOut {
		if err := clipboard.WriteAll(out.String()); err != nil {
			fmt.Fprintf(os.Stderr, "error: clipboard: %v\n", err)
			return
		}
		fmt.Println("(report copied to clipboard)")
	}
}

func runAutopilot(runIndex int, seed int64, level, frames int) runStats {
	r := game.NewRound(level, game.WithSeed(seed))
	r.RunPiloted(game.NewAutopilot(), frames)

	entries := r.Log().Entries()
	spawns := map[string]int{}
	for _, e := range entries {
		if e.Category == "spawn" && e.Key != "exit" {
			spawns[e.Key]++
		}
	}

	return runStats{
		runIndex:              runIndex,
		seed:                  seed,
		summary:               r.Summarize(),
		firstBearAttemptFrame: firstFrame(entries, "bear", "attempt", ""),
		firstBearFrame:        firstFrame(entries, "spawn", "bear", ""),
		firstBearHitFrame:     firstFrame(entries, "bear", "health", ""),
		bearDefeatedFrame:     firstFrame(entries, "bear", "defeated", ""),
		clockFrame:            firstFrame(entries, "round", "clock_dropped", ""),
		teleports:             r.Log().CountCategory("bear", "teleport_start"),
		blocked:               r.Log().CountCategory("hit", "blocked"),
		effects:               r.Log().CountCategory("effect", "applied"),
		actorSpawns:           spawns,
	}
}

func firstFrame(entries []game.RoundLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Frame
		}
	}
	return -1
}

func printRun(w io.Writer, rs runStats) {
	s := rs.summary
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "outcome=%s reason=%s frames=%d elapsed=%.1fs\n", s.Outcome, s.Description, s.Frames, s.Elapsed)
	fmt.Fprintf(w, "phase_markers: bear_attempt=%d bear_spawn=%d first_bear_hit=%d bear_defeated=%d clock=%d\n",
		rs.firstBearAttemptFrame, rs.firstBearFrame, rs.firstBearHitFrame, rs.bearDefeatedFrame, rs.clockFrame)
	fmt.Fprintf(w, "spawns: %s\n", joinCounts(rs.actorSpawns))
	fmt.Fprintf(w, "throws: thrown=%d rejected=%d hits=%d blocked=%d\n", s.Stats.Thrown, s.Stats.FireRejected, s.Stats.Hits, rs.blocked)
	fmt.Fprintf(w, "feeding: rabbits_fed=%d rabbits_angry=%d foxes_fed=%d bear_hits=%d teleports=%d\n",
		s.Stats.RabbitsFed, s.Stats.RabbitsAngry, s.Stats.FoxesFed, s.Stats.BearHits, rs.teleports)
	fmt.Fprintf(w, "powerups: dropped=%d collected=%d expired=%d effects_applied=%d\n",
		s.Stats.PowerupsDropped, s.Stats.PowerupsCollected, s.Stats.PowerupsExpired, rs.effects)
	if s.BearHealth >= 0 {
		fmt.Fprintf(w, "last_bear: health=%d lane=%s\n", s.BearHealth, s.BearLane)
	}
	fmt.Fprintln(w)
}

// outcomeTally counts outcomes and end reasons across runs.
type outcomeTally struct {
	won, lost, undecided int
	reasons              map[string]int
}

func tallyOutcomes(all []runStats) outcomeTally {
	t := outcomeTally{reasons: map[string]int{}}
	for _, rs := range all {
		switch rs.summary.Outcome {
		case game.OutcomeWon:
			t.won++
		case game.OutcomeLost:
			t.lost++
		default:
			t.undecided++
		}
		t.reasons[rs.summary.Description]++
	}
	return t
}

func printAggregate(w io.Writer, all []runStats) {
	totalThrown := 0
	totalHits := 0
	totalRabbitsFed := 0
	totalFoxesFed := 0
	totalBearHits := 0
	totalTeleports := 0
	totalCollected := 0

	bearTicks := make([]int, 0, len(all))
	defeatTicks := make([]int, 0, len(all))
	winTicks := make([]int, 0, len(all))
	lossTicks := make([]int, 0, len(all))

	for _, rs := range all {
		s := rs.summary.Stats
		totalThrown += s.Thrown
		totalHits += s.Hits
		totalRabbitsFed += s.RabbitsFed
		totalFoxesFed += s.FoxesFed
		totalBearHits += s.BearHits
		totalTeleports += rs.teleports
		totalCollected += s.PowerupsCollected
		if rs.firstBearFrame >= 0 {
			bearTicks = append(bearTicks, rs.firstBearFrame)
		}
		if rs.bearDefeatedFrame >= 0 {
			defeatTicks = append(defeatTicks, rs.bearDefeatedFrame)
		}
		switch rs.summary.Outcome {
		case game.OutcomeWon:
			winTicks = append(winTicks, rs.summary.Frames)
		case game.OutcomeLost:
			lossTicks = append(lossTicks, rs.summary.Frames)
		}
	}

	t := tallyOutcomes(all)
	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d won=%d (%.0f%%) lost=%d (%.0f%%) undecided=%d\n",
		len(all), t.won, pct(t.won, len(all)), t.lost, pct(t.lost, len(all)), t.undecided)
	fmt.Fprintf(w, "reasons: %s\n", joinCounts(t.reasons))
	fmt.Fprintf(w, "avg_per_run: thrown=%.1f hits=%.1f rabbits_fed=%.1f foxes_fed=%.1f bear_hits=%.1f teleports=%.1f powerups_collected=%.1f\n",
		avg(totalThrown, len(all)), avg(totalHits, len(all)), avg(totalRabbitsFed, len(all)), avg(totalFoxesFed, len(all)),
		avg(totalBearHits, len(all)), avg(totalTeleports, len(all)), avg(totalCollected, len(all)))
	fmt.Fprintf(w, "hit_rate=%.0f%%\n", pct(totalHits, totalThrown))
	fmt.Fprintf(w, "phase_marker_avg_frames: bear_spawn=%s bear_defeated=%s win=%s loss=%s\n",
		avgFrameString(bearTicks), avgFrameString(defeatTicks), avgFrameString(winTicks), avgFrameString(lossTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, whole int) float64 {
	return avg(part*100, whole)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, ",")
}
