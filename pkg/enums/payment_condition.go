package enums

import "fmt"

// PaymentCondition is the payment term chosen by the franchisee. The cash
// condition is the only one that changes pricing.
type PaymentCondition string

const (
	PaymentConditionCash   PaymentCondition = "À vista"
	PaymentCondition30Days PaymentCondition = "30 dias"
	PaymentCondition60Days PaymentCondition = "60 dias"
	PaymentCondition90Days PaymentCondition = "90 dias"
)

var validPaymentConditions = []PaymentCondition{
	PaymentConditionCash,
	PaymentCondition30Days,
	PaymentCondition60Days,
	PaymentCondition90Days,
}

// PaymentConditions returns the enumerated set in display order.
func PaymentConditions() []PaymentCondition {
	out := make([]PaymentCondition, len(validPaymentConditions))
	copy(out, validPaymentConditions)
	return out
}

// String implements fmt.Stringer.
func (p PaymentCondition) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentCondition.
func (p PaymentCondition) IsValid() bool {
	for _, candidate := range validPaymentConditions {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsCash reports whether the condition qualifies for the upfront discount.
func (p PaymentCondition) IsCash() bool {
	return p == PaymentConditionCash
}

// ParsePaymentCondition converts raw input into a PaymentCondition.
func ParsePaymentCondition(value string) (PaymentCondition, error) {
	for _, candidate := range validPaymentConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment condition %q", value)
}
