package game

const (
	// ScreenWidth and ScreenHeight are the logical playfield size.
	ScreenWidth  = 800
	ScreenHeight = 600
	// FrameRate is the reference rate that per-frame speeds are tuned for.
	FrameRate = 60

	bushHeight = 37
)

// Lane is one of the four horizontal bush rows creatures travel along.
type Lane int

const (
	LaneUpper Lane = iota
	LaneMiddle
	LaneLower
	LaneBottom
	laneCount
)

// LaneCount is the number of lanes on the playfield.
const LaneCount = int(laneCount)

func (l Lane) String() string {
	switch l {
	case LaneUpper:
		return "upper"
	case LaneMiddle:
		return "middle"
	case LaneLower:
		return "lower"
	case LaneBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Top edge of each bush band. Fox and bear baselines hang off these.
var laneTops = [laneCount]float64{113, 256, 393, 543}

// Rabbits sit a little higher than the bush top so their ears peek through.
var rabbitSpawnY = [laneCount]float64{90, 235, 370, 520}

// Where the player stands when occupying the lane.
var playerStandY = [laneCount]float64{52, 196, 333, 483}

// AllLanes lists lanes top to bottom.
var AllLanes = [laneCount]Lane{LaneUpper, LaneMiddle, LaneLower, LaneBottom}

// ClampLane forces l into the valid lane range.
func ClampLane(l Lane) Lane {
	if l < LaneUpper {
		return LaneUpper
	}
	if l >= laneCount {
		return LaneBottom
	}
	return l
}

// LaneY returns the bush-top Y coordinate of the lane.
func LaneY(l Lane) float64 {
	return laneTops[ClampLane(l)]
}

// RabbitSpawnY returns the resting Y of a rabbit in the lane.
func RabbitSpawnY(l Lane) float64 {
	return rabbitSpawnY[ClampLane(l)]
}

// PlayerStandY returns the player's Y when standing in the lane.
func PlayerStandY(l Lane) float64 {
	return playerStandY[ClampLane(l)]
}

// BushBand is the foliage strip of the lane. Sprites are hidden below its top.
func BushBand(l Lane) Rect {
	return Rect{X: 0, Y: LaneY(l), W: ScreenWidth, H: bushHeight}
}

// VisibleHeight returns how much of r, measured from its top, stays visible
// above the first bush band it dips into.
func VisibleHeight(r Rect) float64 {
	for _, l := range AllLanes {
		band := BushBand(l)
		if !r.Overlaps(band) {
			continue
		}
		if v := band.Y - r.Y; v > 0 {
			return v
		}
	}
	return r.H
}

// randomLane draws a lane uniformly.
func randomLane(d Dice) Lane {
	return Lane(d.Intn(LaneCount))
}

// frames converts seconds to reference frames.
func frames(dt float64) float64 {
	return dt * FrameRate
}

// timerEpsilon absorbs the rounding left after summing 1/60 s steps.
const timerEpsilon = 1e-9

// countDown subtracts dt from *t and reports whether it ran out, leaving
// it at zero when it did.
func countDown(t *float64, dt float64) bool {
	*t -= dt
	if *t <= timerEpsilon {
		*t = 0
		return true
	}
	return false
}
