package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const signaturePrefix = "sha256="

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
// Signatures have the form "sha256=<hex>".
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using secretKey.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature in constant time. The "sha256=" prefix is optional.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	if !strings.HasPrefix(signature, signaturePrefix) {
		signature = signaturePrefix + signature
	}
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
