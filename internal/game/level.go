package game

// Season picks the level's backdrop and weather.
type Season int

const (
	SeasonSummer Season = iota
	SeasonAutumn
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// Level describes one stage of the campaign.
type Level struct {
	Number    int
	Name      string
	Season    Season
	Weather   WeatherKind
	StartAmmo [ammoKindCount]int
}

var levels = [...]Level{
	{Number: 1, Name: "Summer Meadow", Season: SeasonSummer, Weather: WeatherNone, StartAmmo: [ammoKindCount]int{5, 5, 0}},
	{Number: 2, Name: "Autumn Woods", Season: SeasonAutumn, Weather: WeatherLeaves, StartAmmo: [ammoKindCount]int{5, 5, 0}},
	{Number: 3, Name: "Winter Hollow", Season: SeasonWinter, Weather: WeatherSnow, StartAmmo: [ammoKindCount]int{5, 5, 5}},
}

// LevelCount is the number of levels in the campaign.
func LevelCount() int { return len(levels) }

// LevelByNumber returns the 1-based level, clamped to the campaign.
func LevelByNumber(n int) Level {
	if n < 1 {
		n = 1
	}
	if n > len(levels) {
		n = len(levels)
	}
	return levels[n-1]
}

// NextLevel returns the level after n and false when n was the last one.
func NextLevel(n int) (Level, bool) {
	if n >= len(levels) {
		return Level{}, false
	}
	return LevelByNumber(n + 1), true
}
