package schedule

import (
	"regexp"
	"strings"
)

// Checkout validation messages. The aggregate keeps them in field order so
// storefront rendering is stable.
const (
	MsgFullNameRequired    = "Full name is required"
	MsgPhoneRequired       = "Phone number is required"
	MsgPhoneInvalid        = "Phone number format is invalid"
	MsgAddressRequired     = "Delivery address is required"
	MsgDateRequired        = "Delivery date is required"
	MsgDateInvalidFormat   = "Delivery date must be in YYYY-MM-DD format"
	MsgDateInvalidCalendar = "Delivery date is not a valid calendar date"
	MsgSlotRequired        = "Delivery time slot is required"
)

var (
	canonicalDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	nonDigitPattern      = regexp.MustCompile(`\D`)
)

// CheckoutResult aggregates the per-field validation outcomes.
type CheckoutResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// FirstError returns the first validation message, or empty when valid.
func (r CheckoutResult) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

func validateFullName(name string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{MsgFullNameRequired}
	}
	return nil
}

func validatePhoneNumber(phone string) []string {
	if strings.TrimSpace(phone) == "" {
		return []string{MsgPhoneRequired}
	}
	// Coarse sanity check, not locale-aware validation.
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) < 7 {
		return []string{MsgPhoneInvalid}
	}
	return nil
}

func validateDeliveryAddress(address string) []string {
	if strings.TrimSpace(address) == "" {
		return []string{MsgAddressRequired}
	}
	return nil
}

func validateDeliveryDate(date string) []string {
	if strings.TrimSpace(date) == "" {
		return []string{MsgDateRequired}
	}
	if !canonicalDatePattern.MatchString(date) {
		return []string{MsgDateInvalidFormat}
	}
	if _, err := ParseISO(date); err != nil {
		return []string{MsgDateInvalidCalendar}
	}
	return nil
}

func validateDeliveryTimeSlot(slotId uint) []string {
	if slotId == 0 {
		return []string{MsgSlotRequired}
	}
	return nil
}

// ValidateCheckout runs the five field validators independently and
// concatenates their messages in a fixed order: name, phone, address,
// date, slot. Per-field rules live only here; use the derived views
// below instead of re-checking fields elsewhere.
func ValidateCheckout(fields CheckoutFields) CheckoutResult {
	errors := make([]string, 0)
	errors = append(errors, validateFullName(fields.FullName)...)
	errors = append(errors, validatePhoneNumber(fields.PhoneNumber)...)
	errors = append(errors, validateDeliveryAddress(fields.DeliveryAddress)...)
	errors = append(errors, validateDeliveryDate(fields.DeliveryDate)...)
	errors = append(errors, validateDeliveryTimeSlot(fields.DeliveryTimeSlot)...)
	return CheckoutResult{Valid: len(errors) == 0, Errors: errors}
}

// CheckoutValid is the boolean-only convenience view.
func CheckoutValid(fields CheckoutFields) bool {
	return ValidateCheckout(fields).Valid
}
