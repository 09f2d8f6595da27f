package game

import (
	"fmt"
	"sort"
	"strings"
)

// DebugReport renders a plain-text report of the last lastFrames frames:
// the round summary, what is on the field right now, per-actor activity
// and the raw log lines. Front-ends copy it to the clipboard.
func (r *Round) DebugReport(lastFrames int) string {
	if lastFrames <= 0 {
		lastFrames = 600
	}
	to := r.frame
	from := to - lastFrames + 1
	if from < 0 {
		from = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Food Throw debug report ---\n")
	fmt.Fprintf(&b, "seed=%d level=%d frame_range=[%d..%d] frames=%d\n\n", r.seed, r.level.Number, from, to, to-from+1)
	b.WriteString(r.log.Summary(r))

	b.WriteString("\n== field ==\n")
	p := r.player
	fmt.Fprintf(&b, "player lane=%s cooldown=%.2f speed=%.0f\n", p.Lane(), p.Cooldown(), p.Speed())
	for _, k := range []PowerupKind{PowerupBanana, PowerupPineapple, PowerupApple} {
		if r.effects.Active(k) {
			fmt.Fprintf(&b, "effect %s remaining=%.1fs\n", k, r.effects.Remaining(k))
		}
	}
	for _, c := range r.creatures {
		cb := c.Bounds()
		fmt.Fprintf(&b, "%-4s %-6s lane=%-6s state=%-11s x=%4.0f y=%4.0f\n", c.Label(), c.Kind(), c.Lane(), c.StateName(), cb.X, cb.Y)
	}
	if len(r.projectiles) > 0 {
		fmt.Fprintf(&b, "projectiles in flight: %d\n", len(r.projectiles))
	}
	for _, pu := range r.powerups {
		fmt.Fprintf(&b, "powerup %s at %.0f,%.0f life=%.1fs\n", pu.Kind, pu.X, pu.Y, pu.Lifetime())
	}
	if r.clock != nil {
		fmt.Fprintf(&b, "clock waiting at %.0f,%.0f\n", r.clock.X, r.clock.Y)
	}

	entries := r.log.FilterFrameRange(from, to)
	byActor := map[string]int{}
	for _, e := range entries {
		byActor[e.Actor]++
	}
	actors := make([]string, 0, len(byActor))
	for a := range byActor {
		actors = append(actors, a)
	}
	sort.Strings(actors)
	b.WriteString("\n== activity ==\n")
	for _, a := range actors {
		fmt.Fprintf(&b, "%-4s %d entries\n", a, byActor[a])
	}

	b.WriteString("\n== log ==\n")
	if len(entries) == 0 {
		b.WriteString("(no entries in range)\n")
	}
	b.WriteString(r.log.FormatRange(from, to))
	return b.String()
}
