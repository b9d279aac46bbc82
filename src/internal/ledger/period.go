package ledger

import (
	"strings"
	"time"

	"github.com/api-sage/mock-bank-portal/src/internal/commons"
)

type Period string

const (
	PeriodAll       Period = "all"
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "thisWeek"
	PeriodThisMonth Period = "thisMonth"
)

const week = 7 * 24 * time.Hour

// ParsePeriod accepts the canonical names case-insensitively, the short dashboard
// names day, week and month, and "" for all.
func ParsePeriod(raw string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return PeriodAll, nil
	case "today", "day":
		return PeriodToday, nil
	case "thisweek", "week":
		return PeriodThisWeek, nil
	case "thismonth", "month":
		return PeriodThisMonth, nil
	default:
		return "", commons.ErrInvalidPeriod
	}
}

// Contains reports whether ts falls inside p as seen from now in loc.
func (p Period) Contains(ts, now time.Time, loc *time.Location) bool {
	switch p {
	case PeriodToday:
		ty, tm, td := ts.In(loc).Date()
		ny, nm, nd := now.In(loc).Date()
		return ty == ny && tm == nm && td == nd
	case PeriodThisWeek:
		return !ts.Before(now.Add(-week))
	case PeriodThisMonth:
		ty, tm, _ := ts.In(loc).Date()
		ny, nm, _ := now.In(loc).Date()
		return ty == ny && tm == nm
	default:
		return true
	}
}
