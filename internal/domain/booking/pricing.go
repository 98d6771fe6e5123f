package booking

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Quote is the derived price of a draft: billable days and total cost.
// Reused verbatim by the live preview, the review step and the confirmation
// summary so the three can never disagree.
type Quote struct {
	Days  int     `json:"days"`
	Total float64 `json:"total"`
}

// QuoteFor computes billable days from the pickup/dropoff calendar dates
// (time of day is ignored for day counting). Missing or unparsable dates
// yield a zero quote; otherwise at least one day is billed, with partial
// days rounded up.
func QuoteFor(pickupDate, dropoffDate string, dailyRate float64) Quote {
	pickup, err := time.Parse(dateLayout, pickupDate)
	if err != nil {
		return Quote{}
	}
	dropoff, err := time.Parse(dateLayout, dropoffDate)
	if err != nil {
		return Quote{}
	}

	diff := dropoff.Sub(pickup)
	if diff < 0 {
		diff = -diff
	}

	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}

	return Quote{
		Days:  days,
		Total: float64(days) * dailyRate,
	}
}
