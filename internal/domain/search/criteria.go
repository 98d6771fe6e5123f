package search

import (
	"time"
)

// dateTimeLayout combines the form's separate date and time fields.
const dateTimeLayout = "2006-01-02T15:04"

// Criteria is the landing-page search form: where and when.
type Criteria struct {
	PickupLocation string `json:"pickupLocation"`
	ReturnLocation string `json:"returnLocation"`
	PickupDate     string `json:"pickupDate"`
	PickupTime     string `json:"pickupTime"`
	DropoffDate    string `json:"dropoffDate"`
	DropoffTime    string `json:"dropoffTime"`
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// CombineDateTime parses a date ("2006-01-02") plus a time ("15:04") into a
// single local instant.
func CombineDateTime(date, tm string) (time.Time, bool) {
	if date == "" || tm == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+"T"+tm, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Validate checks the search form: all six fields required, the dropoff
// instant not in the past, and dropoff strictly after pickup. Returns a
// field-to-message map; first error per field wins.
func (c Criteria) Validate(now time.Time) map[string]string {
	errs := map[string]string{}

	require := func(field, value, msg string) {
		if value == "" {
			setFieldError(errs, field, msg)
		}
	}
	require("pickupLocation", c.PickupLocation, "Pick up location is required")
	require("returnLocation", c.ReturnLocation, "Return location is required")
	require("pickupDate", c.PickupDate, "Pick up date is required")
	require("pickupTime", c.PickupTime, "Pick up time is required")
	require("dropoffDate", c.DropoffDate, "Drop off date is required")
	require("dropoffTime", c.DropoffTime, "Drop off time is required")

	if dropoff, ok := CombineDateTime(c.DropoffDate, c.DropoffTime); ok {
		if !dropoff.After(now) {
			setFieldError(errs, "dropoffTime", "Drop off date and time cannot be in the past")
		}
		if pickup, ok := CombineDateTime(c.PickupDate, c.PickupTime); ok && !dropoff.After(pickup) {
			setFieldError(errs, "dropoffDate", "Drop off must be after pick up")
		}
	}

	return errs
}

func setFieldError(errs map[string]string, field, msg string) {
	if _, exists := errs[field]; !exists {
		errs[field] = msg
	}
}
