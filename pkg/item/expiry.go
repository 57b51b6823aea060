package item

import (
	"math"
	"time"
)

// DaysLeft derives the whole-day count until expiry as the ceiling of
// (expiry - now). Items without an expiry date have an indefinite shelf
// life and yield nil; they are never considered expiring or expired.
// The value is recomputed on every read and never stored.
func DaysLeft(expiryDate *time.Time, now time.Time) *int {
	if expiryDate == nil {
		return nil
	}
	days := int(math.Ceil(expiryDate.Sub(now).Hours() / 24))
	return &days
}
