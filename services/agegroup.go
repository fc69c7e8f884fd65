package services

import (
	"time"

	"MilestoneTracker/models"
)

// CalculateAge returns the age in whole years at the reference date,
// subtracting one year when the birthday has not yet occurred that year.
func CalculateAge(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// CalculateAgeGroup maps a date of birth to one of the five fixed buckets.
// Future or malformed dates are rejected upstream by the registration form,
// not here.
func CalculateAgeGroup(dob, today time.Time) models.AgeGroup {
	age := CalculateAge(dob, today)
	switch {
	case age >= 0 && age <= 3:
		return models.AgeGroup0To3
	case age >= 4 && age <= 6:
		return models.AgeGroup4To6
	case age >= 7 && age <= 8:
		return models.AgeGroup7To8
	case age >= 9 && age <= 12:
		return models.AgeGroup9To12
	}
	return models.AgeGroup13Up
}
