package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidToken covers malformed, tampered, and expired tokens alike so
// callers cannot distinguish why verification failed.
var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 24 * time.Hour

// HMACStrategy issues stateless bearer tokens signed with HMAC-SHA256.
// A token is base64 of "userID:expiry:signature".
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds a strategy around the shared secret.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken signs a token for the user, valid until now+ttl.
func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	payload := fmt.Sprintf("%d:%d", userID, time.Now().Add(s.ttl).Unix())
	token := payload + ":" + s.signPayload(payload)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken verifies the signature and expiry and returns the user ID.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	// The signature never contains a colon, so the last segment is
	// unambiguous even though base64 may pad with '='.
	cut := strings.LastIndex(string(raw), ":")
	if cut < 0 {
		return 0, ErrInvalidToken
	}
	payload, sig := string(raw[:cut]), string(raw[cut+1:])
	if !hmac.Equal([]byte(s.signPayload(payload)), []byte(sig)) {
		return 0, ErrInvalidToken
	}

	uidPart, expPart, ok := strings.Cut(payload, ":")
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(uidPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(expPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Now().After(time.Unix(expiry, 0)) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) signPayload(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
