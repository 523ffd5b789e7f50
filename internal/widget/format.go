package widget

import (
	"fmt"
	"time"
)

const OfferPrefix = "🔥 Offer ends in: "

// FormatRemaining renders d as HHh MMm SSs. Hours keep counting past 24 and any sub-second
// remainder is dropped.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02dh %02dm %02ds", total/3600, total/60%60, total%60)
}

func OfferText(remaining time.Duration) string {
	return OfferPrefix + FormatRemaining(remaining)
}
