package app

import (
	"fmt"
	"strings"

	"github.com/tanvirfarhan/krishibazar/internal/checkout/domain"
	orderdomain "github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError lists every field that failed checkout validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid checkout request: " + strings.Join(msgs, "; ")
}

func validatePlacement(form domain.DeliveryDetails, pay domain.PaymentSelection) error {
	var fields []FieldError

	required := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"address", form.Address},
		{"district", form.District},
		{"postalCode", form.PostalCode},
		{"phone", form.Phone},
		{"email", form.Email},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, FieldError{Field: f.name, Message: "is required"})
		}
	}

	if !form.AgreedToTerms {
		fields = append(fields, FieldError{Field: "termsAgreement", Message: "terms and conditions must be accepted"})
	}

	switch pay.Method {
	case orderdomain.PaymentCashOnDelivery:
		// no extra fields
	case orderdomain.PaymentMobileWallet:
		if strings.TrimSpace(pay.WalletNumber) == "" {
			fields = append(fields, FieldError{Field: "walletNumber", Message: "is required for mobile wallet payments"})
		}
		if strings.TrimSpace(pay.TransactionID) == "" {
			fields = append(fields, FieldError{Field: "transactionId", Message: "is required for mobile wallet payments"})
		}
	case orderdomain.PaymentBankTransfer:
		if strings.TrimSpace(pay.TransactionID) == "" {
			fields = append(fields, FieldError{Field: "transactionId", Message: "is required for bank transfers"})
		}
	default:
		fields = append(fields, FieldError{Field: "paymentMethod", Message: fmt.Sprintf("unknown payment method %q", pay.Method)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
