package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompactNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		n      float64
		want   string
	}{
		{"NaN", "en", math.NaN(), "N/A"},
		{"small number unscaled", "en", 950, "950"},
		{"thousands", "en", 1234, "1.2K"},
		{"exact thousand", "en", 1000, "1K"},
		{"millions rounded", "en", 1250000, "1.3M"},
		{"billions", "en", 2400000000, "2.4B"},
		{"negative", "en", -1500, "-1.5K"},
		{"german decimal separator", "de", 1234, "1,2K"},
		{"invalid locale falls back to english", "zz-not-a-tag", 1234, "1.2K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompactNumber(tt.locale, tt.n))
		})
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar 7, 2026", Date("en", ts))
}
