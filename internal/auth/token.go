package auth

import "time"

// Token is a signed bearer token and the instant the cache stops handing it
// out. Tokens are replaced, never modified.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Expired reports whether the token must not be used at now.
func (t *Token) Expired(now time.Time) bool {
	if t == nil || t.Value == "" {
		return true
	}

	return !now.Before(t.ExpiresAt)
}

// Remaining returns how long the token stays usable after now.
func (t *Token) Remaining(now time.Time) time.Duration {
	if t.Expired(now) {
		return 0
	}

	return t.ExpiresAt.Sub(now)
}
