package CronJobs

import (
	"testing"
	"time"

	"Fleet/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"23:59", 1439},
		{"24:00", -1},
		{"06:60", -1},
		{"garbage", -1},
		{"", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseTimeToMinutes(tt.clock), tt.clock)
	}
}

func TestIsOvernight(t *testing.T) {
	assert.False(t, isOvernight("06:00", "14:30"))
	assert.True(t, isOvernight("21:00", "05:30"))
	assert.False(t, isOvernight("bad", "05:30"))
}

func TestScheduleDays(t *testing.T) {
	schedule := Models.BusSchedule{
		DaysOfWeek: datatypes.JSON([]byte(`["monday","thursday"]`)),
	}
	days := scheduleDays(schedule)
	assert.Equal(t, []string{"monday", "thursday"}, days)
	assert.True(t, containsDay(days, "monday"))
	assert.True(t, containsDay(days, "Thursday"))
	assert.False(t, containsDay(days, "sunday"))

	broken := Models.BusSchedule{DaysOfWeek: datatypes.JSON([]byte(`{`))}
	assert.Nil(t, scheduleDays(broken))
}

func TestClockOnDay(t *testing.T) {
	day := time.Date(2026, 8, 12, 17, 45, 0, 0, time.UTC)
	at := clockOnDay(day, "06:30")
	assert.Equal(t, time.Date(2026, 8, 12, 6, 30, 0, 0, time.UTC), at)

	// Bad clock falls back to midnight
	assert.Equal(t, time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), clockOnDay(day, "nope"))
}

func TestGenerateTripNumberFormat(t *testing.T) {
	number := Models.GenerateTripNumber(time.Date(2026, 8, 12, 6, 0, 0, 0, time.UTC))
	assert.Len(t, number, 12)
	assert.Equal(t, "TRP260812", number[:9])
}
