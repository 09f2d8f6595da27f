package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Food-Throw/internal/game"
)

func TestFirstFrame(t *testing.T) {
	entries := []game.RoundLogEntry{
		{Frame: 3, Category: "spawn", Key: "rabbit", Value: "lane=upper"},
		{Frame: 9, Category: "spawn", Key: "bear", Value: "lane=middle"},
		{Frame: 12, Category: "spawn", Key: "bear", Value: "lane=lower"},
	}
	if got := firstFrame(entries, "spawn", "bear", ""); got != 9 {
		t.Fatalf("first bear = %d, want 9", got)
	}
	if got := firstFrame(entries, "spawn", "bear", "lower"); got != 12 {
		t.Fatalf("first lower bear = %d, want 12", got)
	}
	if got := firstFrame(entries, "round", "won", ""); got != -1 {
		t.Fatalf("missing marker = %d, want -1", got)
	}
}

func TestTallyOutcomes(t *testing.T) {
	all := []runStats{
		{summary: game.RoundSummary{Outcome: game.OutcomeWon, Description: "clock_claimed_after_bear_fed"}},
		{summary: game.RoundSummary{Outcome: game.OutcomeLost, Description: "bear_reached_player"}},
		{summary: game.RoundSummary{Outcome: game.OutcomeWon, Description: "clock_claimed_after_bear_fed"}},
		{summary: game.RoundSummary{Outcome: game.OutcomePlaying, Description: "no_honey_no_bear"}},
	}
	tl := tallyOutcomes(all)
	if tl.won != 2 || tl.lost != 1 || tl.undecided != 1 {
		t.Fatalf("tally = %+v", tl)
	}
	if tl.reasons["clock_claimed_after_bear_fed"] != 2 {
		t.Fatalf("reasons = %v", tl.reasons)
	}
}

func TestAveragesHandleEmpty(t *testing.T) {
	if avg(10, 0) != 0 || pct(1, 0) != 0 {
		t.Fatal("zero denominators should yield 0")
	}
	if pct(1, 4) != 25 {
		t.Fatalf("pct(1,4) = %v", pct(1, 4))
	}
	if avgFrameString(nil) != "n/a" || avgFrameString([]int{10, 20}) != "15.0" {
		t.Fatal("avgFrameString mismatch")
	}
}

func TestJoinCountsSorted(t *testing.T) {
	got := joinCounts(map[string]int{"fox": 2, "bear": 1, "rabbit": 5})
	if got != "bear=1,fox=2,rabbit=5" {
		t.Fatalf("joinCounts = %q", got)
	}
	if joinCounts(nil) != "none" {
		t.Fatal("empty counts should print none")
	}
}

func TestRunAutopilotIsDeterministic(t *testing.T) {
	a := runAutopilot(1, 77, 3, 60*20)
	b := runAutopilot(1, 77, 3, 60*20)
	if a.summary != b.summary {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a.summary, b.summary)
	}
	if a.actorSpawns["rabbit"]+a.actorSpawns["fox"] == 0 {
		t.Fatalf("no wildlife spawned in 20s: %v", a.actorSpawns)
	}
	var sb strings.Builder
	printRun(&sb, a)
	if !strings.Contains(sb.String(), "seed=77") {
		t.Errorf("run header missing seed: %q", sb.String())
	}
}
