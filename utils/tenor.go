package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// TenorToYears converts tenor strings like "1W", "3M", "10Y" to year fractions.
// A bare number is read as years.
func TenorToYears(tenor string) (float64, error) {
	t := strings.TrimSpace(strings.ToUpper(tenor))
	if t == "" {
		return 0, fmt.Errorf("empty tenor")
	}
	count := func(suffix string) (float64, error) {
		v, err := strconv.Atoi(strings.TrimSuffix(t, suffix))
		if err != nil {
			return 0, fmt.Errorf("invalid tenor %q", tenor)
		}
		return float64(v), nil
	}
	switch {
	case strings.HasSuffix(t, "W"):
		v, err := count("W")
		return v * 7.0 / 365.0, err
	case strings.HasSuffix(t, "M"):
		v, err := count("M")
		return v / 12.0, err
	case strings.HasSuffix(t, "Y"):
		v, err := count("Y")
		return v, err
	case strings.HasSuffix(t, "D"):
		v, err := count("D")
		return v / 365.0, err
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid tenor %q", tenor)
	}
	return v, nil
}
