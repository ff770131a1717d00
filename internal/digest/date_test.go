package digest

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestResolveTargetDateToday(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	got, err := ResolveTargetDate(SelectorToday, now)

	assert.Equal(t, nil, err)
	assert.Equal(t, now, got)
}

func TestResolveTargetDateYesterday(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	got, err := ResolveTargetDate(SelectorYesterday, now)

	assert.Equal(t, nil, err)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveTargetDateDefaultsToYesterday(t *testing.T) {
	now := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)

	got, err := ResolveTargetDate("", now)

	assert.Equal(t, nil, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestResolveTargetDateInvalid(t *testing.T) {
	_, err := ResolveTargetDate("tomorrow", time.Now())
	assert.NotEqual(t, nil, err)
}
