package auth

import "time"

// Strategy issues and verifies the bearer tokens that scope every API call
// to one account.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	// TTL bounds token validity; zero selects the default.
	TTL time.Duration
}
