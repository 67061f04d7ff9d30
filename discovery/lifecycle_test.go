package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/careconnect/charityevents-api/models"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, time.June, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		isActive bool
		date     models.Date
		want     Lifecycle
	}{
		{"future active", true, models.NewDate(2025, time.December, 5), StatusUpcoming},
		{"today active", true, models.NewDate(2025, time.June, 1), StatusUpcoming},
		{"yesterday active", true, models.NewDate(2025, time.May, 31), StatusPast},
		{"past active", true, models.NewDate(2025, time.January, 20), StatusPast},
		{"inactive wins over future date", false, models.NewDate(2099, time.January, 1), StatusPaused},
		{"inactive past", false, models.NewDate(2024, time.March, 3), StatusPaused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.isActive, tt.date, now))
		})
	}
}
