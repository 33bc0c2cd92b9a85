// Package signature implements the checkout callback signature scheme:
// hex(HMAC-SHA256(secret, order_id + "|" + payment_id)).
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Payload returns the message the gateway signs for a completed checkout.
func Payload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

// Sign returns the lowercase hex signature for the given order and payment.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Payload(orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig equals the expected signature byte for byte.
// The comparison runs in constant time with respect to the signature contents.
func Verify(secret, orderID, paymentID, sig string) bool {
	expected := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(sig))
}
