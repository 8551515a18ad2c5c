package utils

import (
	"strings"
	"time"

	"stock-dashboard/src/logger"

	"github.com/scmhub/calendar"
)

// Fallback session when no exchange calendar is available for the MIC.
const (
	fallbackOpenHour  = 9
	fallbackCloseHour = 16
)

// TradingCalendar calculates trading days using scmhub/calendar.
type TradingCalendar struct {
	MIC      string
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// GetCalendar loads the exchange calendar for mic (ISO 10383, e.g. "xidx").
// When scmhub/calendar has no entry for it, a Mon-Fri 09:00-16:00 session in
// timezone is used instead.
func GetCalendar(mic string, timezone string, log *logger.Logger) *TradingCalendar {
	if log == nil {
		log = logger.NewNopLogger()
	}
	mic = strings.ToLower(mic)

	if cal := calendar.GetCalendar(mic); cal != nil {
		return &TradingCalendar{MIC: mic, Calendar: cal, Timezone: cal.Loc}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		// Jakarta has no DST, a fixed zone is exact there
		log.Warning("Failed to load timezone %q: %v. Using UTC+7.", timezone, err)
		loc = time.FixedZone("WIB", 7*60*60)
	}
	log.Warning("No calendar for MIC '%s'. Using simple fallback (Mon-Fri %02d:00-%02d:00 %s).",
		mic, fallbackOpenHour, fallbackCloseHour, loc)

	return &TradingCalendar{MIC: mic, Fallback: true, Timezone: loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	// Normalize to timezone if available
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		// Simple fallback: Mon-Fri
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	// Library handles IsHoliday / IsBusinessDay
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}
		hour := t.Hour()
		return hour >= fallbackOpenHour && hour < fallbackCloseHour
	}

	return tc.Calendar.IsOpen(t)
}
