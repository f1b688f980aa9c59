package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestName_KnownHoliday(t *testing.T) {
	name, ok := Name(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, "New Year's Day", name)

	name, ok = Name(time.Date(2025, 12, 25, 15, 30, 0, 0, time.UTC))
	assert.True(t, ok, "time-of-day must not affect the lookup")
	assert.Equal(t, "Christmas Day", name)
}

func TestName_RegularDay(t *testing.T) {
	_, ok := Name(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestAll_CopyIsIsolated(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}

func TestAll_CoversThreeYears(t *testing.T) {
	years := map[string]int{}
	for _, h := range All() {
		years[h.Date[:4]]++
	}
	assert.Equal(t, 11, years["2023"])
	assert.Equal(t, 11, years["2024"])
	assert.Equal(t, 11, years["2025"])
}
