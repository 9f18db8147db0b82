package services

import (
	"crypto/sha512"
	"encoding/hex"
	"strconv"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/recisbogor/recup-backend/config"
	"github.com/recisbogor/recup-backend/models"
)

// SnapSession carries everything the gateway needs to mint a payment page.
type SnapSession struct {
	OrderID      string
	GrossAmount  int64
	CustomerName string
	Email        string
	Phone        string
	ItemName     string
	Quantity     int32
}

// PaymentGateway creates client-usable payment sessions.
type PaymentGateway interface {
	CreateSession(s SnapSession) (string, error)
}

// MidtransGateway implements PaymentGateway via the Snap API.
type MidtransGateway struct {
	client    snap.Client
	serverKey string
}

func NewMidtransGateway(cfg *config.Config) *MidtransGateway {
	env := midtrans.Sandbox
	if cfg.MidtransIsProduction {
		env = midtrans.Production
	}

	g := &MidtransGateway{serverKey: cfg.MidtransServerKey}
	g.client.New(cfg.MidtransServerKey, env)
	return g
}

func (g *MidtransGateway) CreateSession(s SnapSession) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  s.OrderID,
			GrossAmt: s.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: s.CustomerName,
			Email: s.Email,
			Phone: s.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    s.OrderID,
				Name:  s.ItemName,
				Price: s.GrossAmount,
				Qty:   s.Quantity,
			},
		},
	}

	resp, mErr := g.client.CreateTransaction(req)
	if mErr != nil {
		return "", mErr
	}
	return resp.Token, nil
}

// PaymentNotification is the JSON body Midtrans POSTs to the webhook.
type PaymentNotification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// SignNotification computes the signature Midtrans documents for callbacks:
// sha512(order_id + status_code + gross_amount + server_key).
func SignNotification(serverKey, orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifyNotification checks the callback's signature_key against the server key.
func VerifyNotification(serverKey string, n PaymentNotification) bool {
	return n.SignatureKey == SignNotification(serverKey, n.OrderID, n.StatusCode, n.GrossAmount)
}

// MapTransactionStatus translates gateway transaction/fraud status into the
// local payment status. ok is false when the combination maps to nothing and
// the stored status must stay as-is.
func MapTransactionStatus(transactionStatus, fraudStatus string) (status models.PaymentStatus, ok bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return models.PaymentPaid, true
		}
	case "settlement":
		return models.PaymentPaid, true
	case "cancel", "deny", "expire":
		return models.PaymentFailed, true
	case "pending":
		return models.PaymentPending, true
	}
	return "", false
}

// GrossAmountString formats an amount the way Midtrans writes it in
// notifications ("150000.00").
func GrossAmountString(amount int64) string {
	return strconv.FormatInt(amount, 10) + ".00"
}
