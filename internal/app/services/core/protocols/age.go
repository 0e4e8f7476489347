package protocols

import (
	"fmt"
	"math"
	"time"
)

const ageTextFormat = "%d Anos, %d Meses e %d Dias"

// DetailedAge measures the distance between birth and ref. DaysTotal is the
// absolute difference rounded up to whole days; the calendar breakdown
// borrows the length of the month before ref when the day count is short.
func DetailedAge(birth, ref time.Time) AgeDetails {
	diff := ref.Sub(birth)
	if diff < 0 {
		diff = -diff
	}
	daysTotal := int(math.Ceil(diff.Hours() / 24))

	years := ref.Year() - birth.Year()
	months := int(ref.Month()) - int(birth.Month())
	days := ref.Day() - birth.Day()

	if days < 0 {
		months--
		lastOfPreviousMonth := time.Date(ref.Year(), ref.Month(), 0, 0, 0, 0, 0, ref.Location())
		days += lastOfPreviousMonth.Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return AgeDetails{
		Text:      fmt.Sprintf(ageTextFormat, years, months, days),
		Years:     years,
		Months:    months,
		Days:      days,
		DaysTotal: daysTotal,
	}
}

// BMI returns weight / height² with one decimal, or "" when either value
// is missing.
func BMI(weightKg, heightM float64) string {
	if weightKg <= 0 || heightM <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", weightKg/(heightM*heightM))
}
