package booking

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldErrors maps a form field to a single human-readable message. A
// validation pass builds a fresh map; the first error recorded per field
// wins.
type FieldErrors map[string]string

func (e FieldErrors) set(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

func (e FieldErrors) Empty() bool { return len(e) == 0 }

// PaymentMethod is the closed set accepted by the payment step.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
)

// IsCard reports whether the method carries card sub-fields. Both accepted
// methods do today; the check keeps the card rules scoped the way the form
// scopes them.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentCreditCard || m == PaymentDebitCard
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentCreditCard || m == PaymentDebitCard
}

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Dates struct {
	PickupDate  string `json:"pickupDate"`
	PickupTime  string `json:"pickupTime"`
	DropoffDate string `json:"dropoffDate"`
	DropoffTime string `json:"dropoffTime"`
}

type Payment struct {
	Method     PaymentMethod `json:"paymentMethod"`
	CardNumber string        `json:"cardNumber"`
	CardName   string        `json:"cardName"`
	ExpiryDate string        `json:"expiryDate"`
	CVV        string        `json:"cvv"`
}

var (
	expiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// ValidatePersonalInfo checks the first wizard step. phoneMinLen is
// configurable because the source variants disagree on it.
func ValidatePersonalInfo(p PersonalInfo, phoneMinLen int) FieldErrors {
	errs := FieldErrors{}
	if len(p.FirstName) < 2 {
		errs.set("firstName", "First name must be at least 2 characters")
	}
	if len(p.LastName) < 2 {
		errs.set("lastName", "Last name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		errs.set("email", "Please enter a valid email address")
	}
	if len(p.Phone) < phoneMinLen {
		errs.set("phone", "Please enter a valid phone number")
	}
	return errs
}

// ValidateDates checks the second step: all four fields present and the
// combined dropoff instant strictly after the combined pickup instant. The
// cross-field failure is attributed to dropoffDate.
func ValidateDates(d Dates) FieldErrors {
	errs := FieldErrors{}
	if d.PickupDate == "" {
		errs.set("pickupDate", "Pickup date is required")
	}
	if d.PickupTime == "" {
		errs.set("pickupTime", "Pickup time is required")
	}
	if d.DropoffDate == "" {
		errs.set("dropoffDate", "Return date is required")
	}
	if d.DropoffTime == "" {
		errs.set("dropoffTime", "Return time is required")
	}
	if !errs.Empty() {
		return errs
	}

	pickup, okP := combineDateTime(d.PickupDate, d.PickupTime)
	dropoff, okD := combineDateTime(d.DropoffDate, d.DropoffTime)
	if !okP || !okD || !dropoff.After(pickup) {
		errs.set("dropoffDate", "Return date must be after pickup date")
	}
	return errs
}

// ValidatePayment checks the final step against the injected now. Card
// sub-fields are only constrained when the method is a card type.
func ValidatePayment(p Payment, now time.Time) FieldErrors {
	errs := FieldErrors{}
	if !p.Method.Valid() {
		errs.set("paymentMethod", "Please select a payment method")
		return errs
	}
	if !p.Method.IsCard() {
		return errs
	}

	digits := NormalizeCardNumber(p.CardNumber)
	if len(digits) != 16 || !digitsOnly.MatchString(digits) {
		errs.set("cardNumber", "Card number must be exactly 16 digits")
	}
	if strings.TrimSpace(p.CardName) == "" {
		errs.set("cardName", "Cardholder name is required")
	}
	if expired, ok := expiryElapsed(p.ExpiryDate, now); !ok || expired {
		errs.set("expiryDate", "Expiry date must be in MM/YY format and not expired")
	}
	if len(p.CVV) < 3 || len(p.CVV) > 4 || !digitsOnly.MatchString(p.CVV) {
		errs.set("cvv", "CVV must be 3 or 4 digits")
	}
	return errs
}

// NormalizeCardNumber strips whitespace, leaving the raw digit run.
func NormalizeCardNumber(cardNumber string) string {
	return whitespace.ReplaceAllString(cardNumber, "")
}

// MaskCardNumber keeps the trailing four digits for display.
func MaskCardNumber(cardNumber string) string {
	digits := NormalizeCardNumber(cardNumber)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// expiryElapsed parses MM/YY and reports whether the card has fully
// elapsed. The comparison point is the last day of the expiry month, end of
// day: a card expiring 12/25 is valid through 2025-12-31 23:59:59.
func expiryElapsed(expiry string, now time.Time) (expired, ok bool) {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return false, false
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return false, false
	}

	// Day 0 of the following month is the last day of the expiry month.
	end := time.Date(2000+year, time.Month(month)+1, 0, 23, 59, 59, 0, now.Location())
	return end.Before(now), true
}

// FormatExpiry reformats free-typed input into MM/YY while the user types.
func FormatExpiry(raw string) string {
	digits := strings.Map(keepDigit, raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return fmt.Sprintf("%s/%s", digits[:2], digits[2:])
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}
