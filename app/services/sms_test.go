package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
)

type captureGateway struct {
	phones   []string
	messages []string
}

func (g *captureGateway) Send(phone, message string) error {
	g.phones = append(g.phones, phone)
	g.messages = append(g.messages, message)
	return nil
}

func TestSendPaymentReceipt(t *testing.T) {
	capture := &captureGateway{}
	SetGateway(capture)
	defer SetGateway(ConsoleGateway{})

	student := &models.Student{
		FirstName:     "Amina",
		LastName:      "Nakato",
		GuardianPhone: "+256700000001",
	}
	transaction := &models.PaymentTransaction{
		PaidAmount:    300,
		VoucherNumber: "ADM-2026-004",
	}
	account := models.FeeAccount{DueAmount: 200}

	SendPaymentReceipt(student, transaction, account)

	require.Len(t, capture.messages, 1)
	assert.Equal(t, "+256700000001", capture.phones[0])
	assert.Contains(t, capture.messages[0], "Amina Nakato")
	assert.Contains(t, capture.messages[0], "ADM-2026-004")
	assert.Contains(t, capture.messages[0], "200.00")
}

func TestSendPaymentReceiptSkipsWithoutPhone(t *testing.T) {
	capture := &captureGateway{}
	SetGateway(capture)
	defer SetGateway(ConsoleGateway{})

	SendPaymentReceipt(&models.Student{FirstName: "No", LastName: "Phone"}, &models.PaymentTransaction{}, models.FeeAccount{})
	assert.Empty(t, capture.messages)
}

func TestSendDueReminder(t *testing.T) {
	capture := &captureGateway{}
	SetGateway(capture)
	defer SetGateway(ConsoleGateway{})

	student := &models.Student{
		FirstName:     "Brian",
		LastName:      "Okello",
		GuardianPhone: "+256700000002",
	}
	SendDueReminder(student, 450)

	require.Len(t, capture.messages, 1)
	assert.Contains(t, capture.messages[0], "450.00")
}
