// Package signature proves that a payment result returned by the gateway
// checkout widget was issued for our order and was not tampered with.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const separator = "|"

var (
	ErrMissingSecret = errors.New("signature: secret is not configured")
	ErrMalformed     = errors.New("signature: order id, payment id and signature are required")
	ErrMismatch      = errors.New("signature: mismatch")
)

// VerifiedProof is a payment proof that passed Verify. Its fields are only
// settable from this package, so holding one means the HMAC was checked.
type VerifiedProof struct {
	orderID   string
	paymentID string
}

func (p VerifiedProof) OrderID() string   { return p.orderID }
func (p VerifiedProof) PaymentID() string { return p.paymentID }

// IsZero reports whether p was produced by Verify.
func (p VerifiedProof) IsZero() bool { return p.orderID == "" || p.paymentID == "" }

// Compute returns the hex HMAC-SHA256 of "orderID|paymentID" keyed by secret.
func Compute(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + separator + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Valid reports whether sig matches the expected signature. It is false on any
// malformed input or missing secret.
func Valid(orderID, paymentID, sig, secret string) bool {
	_, err := Verify(orderID, paymentID, sig, secret)
	return err == nil
}

func Verify(orderID, paymentID, sig, secret string) (VerifiedProof, error) {
	if secret == "" {
		return VerifiedProof{}, ErrMissingSecret
	}
	if orderID == "" || paymentID == "" || sig == "" ||
		strings.Contains(orderID, separator) || strings.Contains(paymentID, separator) {
		return VerifiedProof{}, ErrMalformed
	}

	got, err := hex.DecodeString(sig)
	if err != nil {
		return VerifiedProof{}, ErrMalformed
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + separator + paymentID))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return VerifiedProof{}, ErrMismatch
	}

	return VerifiedProof{orderID: orderID, paymentID: paymentID}, nil
}
