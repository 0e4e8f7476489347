package utils

import (
	"math"
	"proacolhe-service/internal/pkg/constvars"
	"time"
)

const daysPerYear = 365.25

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateFormatYYYYMMDD, value)
}

// IsFutureDate compares calendar days only, so today is never in the future.
func IsFutureDate(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

// AgeInYears returns the whole years elapsed since birthDate, counting a
// year as 365.25 days. Unparseable dates yield zero.
func AgeInYears(birthDate string, now time.Time) int {
	birth, err := ParseDate(birthDate)
	if err != nil {
		return 0
	}
	elapsed := now.Sub(birth)
	if elapsed < 0 {
		return 0
	}
	return int(math.Floor(elapsed.Hours() / 24 / daysPerYear))
}
