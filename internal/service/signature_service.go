package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using secret.
// Returns lowercase hex-encoded signature.
func (s *HMACSignatureService) Sign(secret string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against HMAC-SHA256(secret, payload) in constant time.
func (s *HMACSignatureService) Verify(secret string, payload string, signature string) bool {
	expected := s.Sign(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildCanonicalString returns the signed payload of an event delivery.
// Format: TIMESTAMP.BODY
func (s *HMACSignatureService) BuildCanonicalString(timestamp int64, body []byte) string {
	return strconv.FormatInt(timestamp, 10) + "." + string(body)
}
