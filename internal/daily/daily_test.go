package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestDayIndexStableWithinADay(t *testing.T) {
	d := time.Date(2026, 10, 19, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, dayIndex(d, "salt", 120), dayIndex(d.Add(23*time.Hour), "salt", 120))

	for i := 0; i < 50; i++ {
		idx := dayIndex(d.AddDate(0, 0, i), "salt", 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
}

func TestAnswer(t *testing.T) {
	d := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	answers := []string{"right", "wrong", "tares"}
	assert.Contains(t, answers, Answer(d, "s", answers))
	assert.Equal(t, Answer(d, "s", answers), Answer(d.Add(12*time.Hour), "s", answers))
	assert.Equal(t, "", Answer(d, "s", nil))
}
