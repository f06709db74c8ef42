package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/config"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"

	"github.com/google/uuid"
)

const (
	idempotencyKeyPrefix = "ik_"
	anchorKeyPrefix      = "ika_"
)

// Idempotency modes, as configured by submission.idempotency_mode.
const (
	IdempotencyModeContent = "content"
	IdempotencyModeRandom  = "random"
)

// ContentKeyer derives the key from the mapped fields, the package id and
// the submission window. Identical submissions in one window share a key.
type ContentKeyer struct {
	window time.Duration
	now    func() time.Time
}

// NewContentKeyer creates a keyer with the given window.
func NewContentKeyer(window time.Duration) *ContentKeyer {
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &ContentKeyer{window: window, now: time.Now}
}

// Key returns ik_<blake2b hex>.
func (k *ContentKeyer) Key(fields map[string]any, packageID string) (string, error) {
	canonical, err := canonicalFields(fields)
	if err != nil {
		return "", err
	}
	bucket := k.now().UTC().UnixNano() / int64(k.window)
	return idempotencyKeyPrefix + domain.Fingerprint(
		canonical,
		[]byte(packageID),
		[]byte(strconv.FormatInt(bucket, 10)),
	), nil
}

// Anchor returns ika_<blake2b hex>, the content key without the window
// bucket. Replay entries stored under it expire after the window measured
// from acceptance, which covers retries that straddle a bucket boundary.
func (k *ContentKeyer) Anchor(fields map[string]any, packageID string) (string, error) {
	canonical, err := canonicalFields(fields)
	if err != nil {
		return "", err
	}
	return anchorKeyPrefix + domain.Fingerprint(canonical, []byte(packageID)), nil
}

func canonicalFields(fields map[string]any) ([]byte, error) {
	// encoding/json sorts map keys, so the encoding is canonical.
	canonical, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding fields for idempotency key: %w", err)
	}
	return canonical, nil
}

// RandomKeyer issues a fresh key for every attempt.
type RandomKeyer struct{}

// Key returns ik_<uuid>.
func (RandomKeyer) Key(map[string]any, string) (string, error) {
	return idempotencyKeyPrefix + uuid.NewString(), nil
}

// NewIdempotencyKeyer returns the keyer for cfg.IdempotencyMode.
func NewIdempotencyKeyer(cfg config.SubmissionConfig) ports.IdempotencyKeyer {
	if cfg.IdempotencyMode == IdempotencyModeRandom {
		return RandomKeyer{}
	}
	return NewContentKeyer(cfg.IdempotencyWindow)
}
