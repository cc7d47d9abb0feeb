package enum

import "strings"

// PaymentMethod is how a completed sale was paid for
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
	PaymentCheck  PaymentMethod = "check"
)

// Valid reports whether the payment method is one of the accepted values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentCheck:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Title returns the method capitalized for display, e.g. "Cash"
func (m PaymentMethod) Title() string {
	if m == "" {
		return ""
	}
	s := string(m)
	return strings.ToUpper(s[:1]) + s[1:]
}
