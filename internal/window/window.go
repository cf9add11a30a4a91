package window

import "time"

const (
	leetHour      = 13
	achieveMinute = 37
	// Publishing runs one minute after the achievement window so that the
	// window's records have landed before aggregation.
	publishMinute = 38
)

// Clock is an instant broken into a guild's local calendar. Day, Month and
// Year are plain integers because the achievement identity is defined in
// local time, not UTC.
type Clock struct {
	Hour   int
	Minute int
	Day    int
	Month  int
	Year   int
}

func Localize(instant time.Time, loc *time.Location) Clock {
	local := instant.In(loc)
	return Clock{
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Day:    local.Day(),
		Month:  int(local.Month()),
		Year:   local.Year(),
	}
}

// IsAchievement reports whether the clock is inside the single qualifying
// minute, 13:37 local.
func IsAchievement(clock Clock) bool {
	return clock.Hour == leetHour && clock.Minute == achieveMinute
}

// IsPublish reports whether the clock is the leaderboard publish moment,
// 13:38 local.
func IsPublish(clock Clock) bool {
	return clock.Hour == leetHour && clock.Minute == publishMinute
}
