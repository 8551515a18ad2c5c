package utils

import (
	"time"

	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// MarketScheduler answers "is the exchange trading right now" for the
// dashboard's market badge.
type MarketScheduler struct {
	Calendar *TradingCalendar
	clock    interfaces.IClock
	logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewMarketScheduler(cfg *models.MMarketConfig, clock interfaces.IClock, l *logger.Logger) *MarketScheduler {
	if l == nil {
		l = logger.NewNopLogger()
	}
	ms := &MarketScheduler{
		Calendar: GetCalendar(cfg.MIC, cfg.Timezone, l),
		clock:    clock,
		logger:   l,
	}
	ms.logger.Info("MarketScheduler: using calendar %s (fallback=%v, tz=%s)",
		ms.Calendar.MIC, ms.Calendar.Fallback, ms.Calendar.Timezone)
	return ms
}

// -----------------------------------------------------------------------------

// Status reports the market state at the clock's current time
func (ms *MarketScheduler) Status() models.MMarketStatus {
	return ms.StatusAt(ms.clock.Now())
}

func (ms *MarketScheduler) StatusAt(t time.Time) models.MMarketStatus {
	local := t
	if ms.Calendar.Timezone != nil {
		local = t.In(ms.Calendar.Timezone)
	}
	return models.MMarketStatus{
		MIC:        ms.Calendar.MIC,
		Open:       ms.Calendar.IsOpenOnMinute(t),
		TradingDay: ms.Calendar.IsTradingDay(t),
		LocalTime:  local.Format(time.RFC3339),
		Fallback:   ms.Calendar.Fallback,
	}
}

// IsOpen is a shorthand for Status().Open
func (ms *MarketScheduler) IsOpen() bool {
	return ms.Calendar.IsOpenOnMinute(ms.clock.Now())
}
