package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signFor(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const (
		orderID   = "order_Lx92jd8a"
		paymentID = "pay_Mn38dkq1"
		secret    = "test_secret_key"
	)
	valid := signFor(orderID, paymentID, secret)

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		secret    string
		want      bool
	}{
		{"valid signature", orderID, paymentID, valid, secret, true},
		{"tampered order id", "order_other", paymentID, valid, secret, false},
		{"tampered payment id", orderID, "pay_other", valid, secret, false},
		{"wrong secret", orderID, paymentID, valid, "other_secret", false},
		{"empty signature", orderID, paymentID, "", secret, false},
		{"garbage signature", orderID, paymentID, "deadbeef", secret, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature(tt.orderID, tt.paymentID, tt.signature, tt.secret); got != tt.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToPaise(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{499.99, 49999},
		{0.1, 10},
		// floating point representation of 19.99 is slightly below; rounding
		// must not truncate it down to 1998.
		{19.99, 1999},
		{100.5, 10050},
	}

	for _, tt := range tests {
		if got := ToPaise(tt.amount); got != tt.want {
			t.Errorf("ToPaise(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}
