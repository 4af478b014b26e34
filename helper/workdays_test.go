package helper

import (
	"context"
	"testing"

	"leave_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWorkingDays(t *testing.T) {
	calc := &WorkdayCalculator{Holidays: &fakeHolidays{holidays: []model.Holiday{
		{Name: "Founders Day", Date: date("2025-06-18"), Active: true},
		{Name: "Retired holiday", Date: date("2025-06-19"), Active: false},
		{Name: "Weekend holiday", Date: date("2025-06-21"), Active: true},
	}}}

	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full business week", "2025-06-23", "2025-06-27", 5},
		{"spanning a weekend", "2025-06-26", "2025-06-30", 3},
		{"weekend only", "2025-06-28", "2025-06-29", 0},
		{"single working day", "2025-06-24", "2025-06-24", 1},
		{"active holiday skipped", "2025-06-16", "2025-06-20", 4},
		{"holiday on a weekend changes nothing", "2025-06-20", "2025-06-23", 2},
		{"end before start", "2025-06-24", "2025-06-23", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CountWorkingDays(context.Background(), date(tt.start).Time, date(tt.end).Time)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMidnightTruncates(t *testing.T) {
	truncated := Midnight(fixedNow)
	assert.Equal(t, 0, truncated.Hour())
	assert.Equal(t, 0, truncated.Minute())
	assert.Equal(t, fixedNow.Day(), truncated.Day())
}
