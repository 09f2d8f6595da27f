package game

import "testing"

func TestTicker_ScrollsAndWraps(t *testing.T) {
	tk := NewTickerState([]string{"one", "two"}, BearHUDBox)
	if tk.Initialized() {
		t.Fatalf("ticker should start uninitialized")
	}
	measure := func(string) float64 { return 100 }

	// 0.5s = 30 reference frames = 60px per step.
	for i := 0; i < 4; i++ {
		tk.Advance(0.5, measure)
	}
	if !tk.Initialized() || tk.Index != 0 || tk.X != 240 {
		t.Fatalf("after 4 steps index=%d x=%v, want 0 / 240", tk.Index, tk.X)
	}
	tk.Advance(0.5, measure)
	if tk.Index != 1 || tk.X != BearHUDBox.X+BearHUDBox.W {
		t.Fatalf("after wrap index=%d x=%v, want 1 / %v", tk.Index, tk.X, BearHUDBox.X+BearHUDBox.W)
	}
	if tk.Headline() != "two" {
		t.Fatalf("headline = %q", tk.Headline())
	}
	for i := 0; i < 5; i++ {
		tk.Advance(0.5, measure)
	}
	if tk.Index != 0 {
		t.Fatalf("ticker should wrap back to the first headline, index=%d", tk.Index)
	}
}

func TestTicker_EmptyIsInert(t *testing.T) {
	tk := NewTickerState(nil, BearHUDBox)
	tk.Advance(1, nil)
	if tk.Initialized() || tk.Headline() != "" {
		t.Fatalf("empty ticker should do nothing")
	}
}

func TestRoundTicker_PausesForBear(t *testing.T) {
	r := quietRound()
	r.RunFrames(10)
	before := r.Ticker().X
	r.SpawnBear(LaneMiddle)
	r.RunFrames(10)
	if r.Ticker().X != before {
		t.Fatalf("ticker moved while the bear box was in use")
	}
	if s := r.Snapshot(); s.ShowTicker || !s.Bear.Present {
		t.Fatalf("snapshot should show the bear box, not the ticker")
	}
}
