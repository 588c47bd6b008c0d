package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundWorkHours(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"full day", 8 * time.Hour, 8.0},
		{"half hour", 7*time.Hour + 30*time.Minute, 7.5},
		{"rounds up", 7*time.Hour + 44*time.Minute + 48*time.Second, 7.75},
		{"short session", 5 * time.Minute, 0.08},
		{"two decimals", 1*time.Hour + 10*time.Minute, 1.17},
		{"zero", 0, 0.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, roundWorkHours(c.d))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	in := time.Date(2025, 3, 14, 15, 9, 26, 535000000, loc)
	got := startOfDay(in)

	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 14, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, loc, got.Location())
}
