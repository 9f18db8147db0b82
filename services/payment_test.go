package services

import (
	"testing"

	"github.com/recisbogor/recup-backend/models"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		transactionStatus string
		fraudStatus       string
		want              models.PaymentStatus
		ok                bool
	}{
		{"capture", "accept", models.PaymentPaid, true},
		{"capture", "challenge", "", false},
		{"settlement", "", models.PaymentPaid, true},
		{"cancel", "", models.PaymentFailed, true},
		{"deny", "", models.PaymentFailed, true},
		{"expire", "", models.PaymentFailed, true},
		{"pending", "", models.PaymentPending, true},
		{"refund", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		got, ok := MapTransactionStatus(tc.transactionStatus, tc.fraudStatus)
		if got != tc.want || ok != tc.ok {
			t.Errorf("MapTransactionStatus(%q, %q) = (%q, %v), want (%q, %v)",
				tc.transactionStatus, tc.fraudStatus, got, ok, tc.want, tc.ok)
		}
	}
}

func TestVerifyNotification(t *testing.T) {
	serverKey := "SB-Mid-server-testkey"
	n := PaymentNotification{
		OrderID:     "REG-ABCDE12345",
		StatusCode:  "200",
		GrossAmount: "450000.00",
	}
	n.SignatureKey = SignNotification(serverKey, n.OrderID, n.StatusCode, n.GrossAmount)

	if !VerifyNotification(serverKey, n) {
		t.Error("expected a correctly signed notification to verify")
	}

	n.SignatureKey = "deadbeef"
	if VerifyNotification(serverKey, n) {
		t.Error("expected a forged signature to fail verification")
	}

	n.SignatureKey = SignNotification("other-key", n.OrderID, n.StatusCode, n.GrossAmount)
	if VerifyNotification(serverKey, n) {
		t.Error("expected a signature from another key to fail verification")
	}
}

func TestGrossAmountString(t *testing.T) {
	if got := GrossAmountString(150000); got != "150000.00" {
		t.Errorf("expected 150000.00, got %q", got)
	}
}
