package services

import (
	"testing"
	"time"

	"MilestoneTracker/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAgeSubtractsYearBeforeBirthday(t *testing.T) {
	today := date(2025, time.June, 15)

	// Birthday already passed this year
	assert.Equal(t, 4, CalculateAge(date(2021, time.March, 1), today))
	// Birthday later this year
	assert.Equal(t, 3, CalculateAge(date(2021, time.September, 1), today))
	// Birthday is today
	assert.Equal(t, 4, CalculateAge(date(2021, time.June, 15), today))
	// Birthday tomorrow
	assert.Equal(t, 3, CalculateAge(date(2021, time.June, 16), today))
}

func TestCalculateAgeGroupBuckets(t *testing.T) {
	today := date(2025, time.June, 15)

	tests := []struct {
		name string
		dob  time.Time
		want models.AgeGroup
	}{
		{"newborn", date(2025, time.June, 1), models.AgeGroup0To3},
		{"three years old", date(2022, time.January, 10), models.AgeGroup0To3},
		{"exactly four years", date(2021, time.June, 15), models.AgeGroup4To6},
		{"six years old", date(2018, time.August, 20), models.AgeGroup4To6},
		{"seven years old", date(2018, time.January, 5), models.AgeGroup7To8},
		{"eight years old", date(2016, time.July, 1), models.AgeGroup7To8},
		{"nine years old", date(2016, time.May, 1), models.AgeGroup9To12},
		{"twelve years old", date(2013, time.January, 1), models.AgeGroup9To12},
		{"thirteen years old", date(2012, time.June, 1), models.AgeGroup13Up},
		{"eighteen years old", date(2007, time.January, 1), models.AgeGroup13Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAgeGroup(tt.dob, today)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestCalculateAgeGroupBoundaryFlipsAtBirthday(t *testing.T) {
	today := date(2025, time.June, 15)

	// Exactly 4 years before today -> second bucket
	assert.Equal(t, models.AgeGroup4To6, CalculateAgeGroup(date(2021, time.June, 15), today))
	// 4 years minus one day -> still first bucket
	assert.Equal(t, models.AgeGroup0To3, CalculateAgeGroup(date(2021, time.June, 16), today))

	// Same flip at the 7, 9 and 13 year boundaries
	assert.Equal(t, models.AgeGroup7To8, CalculateAgeGroup(date(2018, time.June, 15), today))
	assert.Equal(t, models.AgeGroup4To6, CalculateAgeGroup(date(2018, time.June, 16), today))
	assert.Equal(t, models.AgeGroup9To12, CalculateAgeGroup(date(2016, time.June, 15), today))
	assert.Equal(t, models.AgeGroup7To8, CalculateAgeGroup(date(2016, time.June, 16), today))
	assert.Equal(t, models.AgeGroup13Up, CalculateAgeGroup(date(2012, time.June, 15), today))
	assert.Equal(t, models.AgeGroup9To12, CalculateAgeGroup(date(2012, time.June, 16), today))
}
