package item

import (
	"testing"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiryTextIndefinite(t *testing.T) {
	expiry, err := ParseExpiryText("무기한", time.Now())
	require.NoError(t, err)
	assert.Nil(t, expiry)
}

func TestParseExpiryText(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		text string
		days int
	}{
		{"7일", 7},
		{"1일", 1},
		{"30일", 30},
		{"365일", 365},
		{" 14일 ", 14},
		{"0일", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expiry, err := ParseExpiryText(tt.text, now)
			require.NoError(t, err)
			require.NotNil(t, expiry)
			assert.Equal(t, now.AddDate(0, 0, tt.days), *expiry)
		})
	}
}

func TestParseExpiryTextRejectsTextWithoutDigits(t *testing.T) {
	for _, text := range []string{"", "일", "며칠", "unknown", "약 일주일"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseExpiryText(text, time.Now())
			assert.ErrorIs(t, err, domain.ErrInvalidExpiryText)
		})
	}
}

func TestFormatExpiryText(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "무기한", FormatExpiryText(nil, now))

	in7 := now.AddDate(0, 0, 7)
	assert.Equal(t, "7일", FormatExpiryText(&in7, now))

	// Partial days round up the same way DaysLeft does.
	laterToday := now.Add(2 * time.Hour)
	assert.Equal(t, "1일", FormatExpiryText(&laterToday, now))

	// Already-expired dates floor at zero instead of going negative.
	past := now.AddDate(0, 0, -3)
	assert.Equal(t, "0일", FormatExpiryText(&past, now))
}

func TestFormatExpiryTextMatchesDaysLeft(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
	expiry := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, *DaysLeft(&expiry, now))
	assert.Equal(t, "7일", FormatExpiryText(&expiry, now))
}

func TestParseFormatRoundTrip(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	expiry, err := ParseExpiryText("7일", now)
	require.NoError(t, err)
	assert.Equal(t, "7일", FormatExpiryText(expiry, now))
}
