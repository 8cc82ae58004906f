// internal/age/age.go
package age

import (
	"fmt"
	"time"
)

const dayDuration = 24 * time.Hour

// ParseDate accepts ISO dates with or without a time component.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// InDays returns full days elapsed between birthDate and now. Negative for
// pregnancy-window dates in the future.
func InDays(birthDate string, now time.Time) int {
	birth, err := ParseDate(birthDate)
	if err != nil {
		return 0
	}
	return int(now.Sub(birth) / dayDuration)
}

// InMonths approximates age in months using the 30-day month the catalog's
// age windows are authored against.
func InMonths(birthDate string, now time.Time) int {
	days := InDays(birthDate, now)
	if days < 0 {
		return 0
	}
	return days / 30
}

// Label formats an age like the app shows it: "3 meses e 12 dias".
func Label(birthDate string, at time.Time) string {
	birth, err := ParseDate(birthDate)
	if err != nil {
		return "Data inválida"
	}
	totalDays := int(at.Sub(birth) / dayDuration)
	if totalDays < 0 {
		return "Data inválida"
	}
	if totalDays == 0 {
		return "0 dias"
	}
	months := totalDays / 30
	days := totalDays % 30
	if months == 0 {
		return fmt.Sprintf("%d %s", days, plural(days, "dia", "dias"))
	}
	if days == 0 {
		return fmt.Sprintf("%d %s", months, plural(months, "mês", "meses"))
	}
	return fmt.Sprintf("%d %s e %d %s",
		months, plural(months, "mês", "meses"),
		days, plural(days, "dia", "dias"))
}

// DaysLabel formats a recommended age in days: "Ao nascer", "15 dias",
// "2 meses".
func DaysLabel(days int) string {
	if days == 0 {
		return "Ao nascer"
	}
	if days < 30 {
		return fmt.Sprintf("%d dias", days)
	}
	months := days / 30
	return fmt.Sprintf("%d %s", months, plural(months, "mês", "meses"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
