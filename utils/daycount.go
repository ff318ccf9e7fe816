package utils

import (
	"fmt"
	"strings"
	"time"
)

// DayCount names a year-fraction convention.
type DayCount string

const (
	Act360  DayCount = "ACT/360"
	Act365F DayCount = "ACT/365F"
	Thirty  DayCount = "30/360"
	ThirtyE DayCount = "30E/360"

	DefaultDayCount = Act365F
)

// ParseDayCount normalises a convention name. An empty name selects ACT/365F,
// the curve time axis used by the curve tooling.
func ParseDayCount(s string) (DayCount, error) {
	switch dc := DayCount(strings.ToUpper(strings.TrimSpace(s))); dc {
	case "":
		return DefaultDayCount, nil
	case Act360, Act365F, Thirty, ThirtyE:
		return dc, nil
	default:
		return "", fmt.Errorf("unsupported day count %q", s)
	}
}

// YearFraction computes the year fraction between two dates under dc.
// Supported conventions: ACT/360, ACT/365F, 30E/360, 30/360.
func YearFraction(start, end time.Time, dc DayCount) (float64, error) {
	switch dc {
	case Act360:
		return Days(start, end) / 360.0, nil
	case Act365F:
		return Days(start, end) / 365.0, nil
	case ThirtyE:
		// 30E/360 ISDA (Eurobond basis)
		// D1 and D2 are capped at 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2), nil
	case Thirty:
		// 30/360 US (bond basis)
		// D2 is capped only when D1 is 30 or 31
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 && d1 == 30 {
			d2 = 30
		}
		return thirty360(start, end, d1, d2), nil
	default:
		return 0, fmt.Errorf("unsupported day count %q", string(dc))
	}
}

func thirty360(start, end time.Time, d1, d2 int) float64 {
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}
