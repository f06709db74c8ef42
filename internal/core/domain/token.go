package domain

import "time"

// AccessToken is a short-lived bearer credential from the client-credential grant.
type AccessToken struct {
	Value     string    `json:"value"`
	TokenType string    `json:"token_type,omitempty"`
	ExpiresAt time.Time `json:"expires_at"` // zero when the provider did not say
}

// HasExpiry reports whether the expiry is known.
func (t *AccessToken) HasExpiry() bool {
	return !t.ExpiresAt.IsZero()
}

// Usable reports whether the token can still be sent at now, keeping skew
// in reserve. Tokens with an unknown expiry are never considered reusable.
func (t *AccessToken) Usable(now time.Time, skew time.Duration) bool {
	if t == nil || t.Value == "" || !t.HasExpiry() {
		return false
	}
	return now.Add(skew).Before(t.ExpiresAt)
}

// TTL returns how long the token may be reused, or 0.
func (t *AccessToken) TTL(now time.Time, skew time.Duration) time.Duration {
	if !t.Usable(now, skew) {
		return 0
	}
	return t.ExpiresAt.Sub(now) - skew
}
