package item

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
)

// ExpiryTextIndefinite is the classifier's sentinel for items without an
// expiry date, such as salt or soy sauce.
const ExpiryTextIndefinite = "무기한"

// ParseExpiryText converts a coarse duration string into a concrete
// expiry date counted from now. "무기한" yields nil (indefinite). Any
// other text must contain a leading run of digits ("7일" -> 7 days); a
// text without digits is rejected rather than silently treated as zero
// or one day.
func ParseExpiryText(text string, now time.Time) (*time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == ExpiryTextIndefinite {
		return nil, nil
	}

	days := 0
	found := false
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			days = days*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	if !found {
		return nil, domain.ErrInvalidExpiryText
	}

	expiry := now.AddDate(0, 0, days)
	return &expiry, nil
}

// FormatExpiryText is the reverse conversion shown next to each item:
// the same whole-day count DaysLeft produces, floored at zero for
// already-expired items.
func FormatExpiryText(expiryDate *time.Time, now time.Time) string {
	if expiryDate == nil {
		return ExpiryTextIndefinite
	}
	days := *DaysLeft(expiryDate, now)
	if days < 0 {
		days = 0
	}
	return fmt.Sprintf("%d일", days)
}
