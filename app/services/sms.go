package services

import (
	"fmt"
	"log"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

// SMSGateway sends a text message to a phone number. The real gateway
// lives outside this application; implementations here only adapt it.
type SMSGateway interface {
	Send(phone, message string) error
}

// ConsoleGateway logs messages instead of sending them. Used in
// development and whenever no gateway credentials are configured.
type ConsoleGateway struct{}

func (ConsoleGateway) Send(phone, message string) error {
	log.Printf("SMS to %s: %s", phone, message)
	return nil
}

var gateway SMSGateway = ConsoleGateway{}

// SetGateway swaps the gateway implementation. Tests and main wire
// this; the default console gateway is always safe.
func SetGateway(g SMSGateway) {
	if g != nil {
		gateway = g
	}
}

// GatewayFromConfig selects a gateway for the configured credentials.
// Without an API key the console gateway is used.
func GatewayFromConfig(cfg config.SMSConfig) SMSGateway {
	if cfg.APIKey == "" {
		return ConsoleGateway{}
	}
	// Gateway HTTP adapters are deployment-specific; credentials are
	// accepted here so a real adapter can be dropped in without
	// touching callers.
	return ConsoleGateway{}
}

// SendPaymentReceipt texts the guardian after a successful collection.
// Best effort: a failure is logged and never rolls the payment back.
func SendPaymentReceipt(student *models.Student, t *models.PaymentTransaction, account models.FeeAccount) {
	if student.GuardianPhone == "" {
		return
	}
	message := fmt.Sprintf("Payment received for %s: %.2f (voucher %s). Due balance: %.2f.",
		student.FullName(), t.PaidAmount, t.VoucherNumber, account.DueAmount)
	if err := gateway.Send(student.GuardianPhone, message); err != nil {
		log.Printf("Failed to send payment receipt SMS for student %s: %v", student.ID, err)
	}
}

// SendDueReminder texts the guardian about an outstanding balance.
func SendDueReminder(student *models.Student, due float64) {
	if student.GuardianPhone == "" {
		return
	}
	message := fmt.Sprintf("Reminder: %s has an outstanding fee balance of %.2f. Please clear it at the school office.",
		student.FullName(), due)
	if err := gateway.Send(student.GuardianPhone, message); err != nil {
		log.Printf("Failed to send due reminder SMS for student %s: %v", student.ID, err)
	}
}
