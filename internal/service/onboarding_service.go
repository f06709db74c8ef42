package service

import (
	"context"
	"strings"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// OnboardingConfig is the submission pipeline's share of the configuration.
type OnboardingConfig struct {
	PackageID string
	Mode      domain.IntakeMode
	ReplayTTL time.Duration
}

// anchorer is implemented by keyers whose keys can be matched across window
// buckets through the replay cache.
type anchorer interface {
	Anchor(fields map[string]any, packageID string) (string, error)
}

type onboardingService struct {
	tokens    ports.TokenProvider
	submitter ports.ApplicationSubmitter
	keyer     ports.IdempotencyKeyer
	replay    ports.SubmissionCache // optional
	cfg       OnboardingConfig
	log       zerolog.Logger
}

// NewOnboardingService wires the submission pipeline. replay may be nil.
func NewOnboardingService(
	tokens ports.TokenProvider,
	submitter ports.ApplicationSubmitter,
	keyer ports.IdempotencyKeyer,
	replay ports.SubmissionCache,
	cfg OnboardingConfig,
	log zerolog.Logger,
) ports.OnboardingService {
	if cfg.Mode == "" {
		cfg.Mode = domain.IntakeModeIntake
	}
	return &onboardingService{
		tokens:    tokens,
		submitter: submitter,
		keyer:     keyer,
		replay:    replay,
		cfg:       cfg,
		log:       log,
	}
}

// Submit maps the record, obtains a token and submits the application.
// Steps run in order and the first failure stops the pipeline.
func (s *onboardingService) Submit(ctx context.Context, record *domain.MerchantIntakeRecord) (*domain.ApplicationResult, error) {
	if record == nil {
		return nil, apperror.Validation("Missing application data")
	}
	if missing := record.MissingRequired(); len(missing) > 0 {
		return nil, apperror.Validation("Missing required fields: " + strings.Join(missing, ", "))
	}
	if !record.Submittable() {
		return nil, apperror.Validation("Terms and security policy must be accepted")
	}
	if s.cfg.PackageID == "" {
		return nil, apperror.ErrConfiguration("submission.package_id")
	}

	if s.cfg.Mode == domain.IntakeModeIntake && record.HasBanking() {
		s.log.Debug().Msg("banking fields dropped in intake mode")
	}

	fields := MapFields(record.Values(s.cfg.Mode), TableFor(s.cfg.Mode))
	key, err := s.keyer.Key(fields, s.cfg.PackageID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	anchor := s.anchor(fields)
	if res := s.replayed(ctx, key, anchor); res != nil {
		return res, nil
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.submitter.Submit(ctx, &domain.UpstreamApplicationRequest{
		Fields:         fields,
		PackageID:      s.cfg.PackageID,
		IdempotencyKey: key,
	}, token)
	if err != nil {
		return nil, err
	}

	s.remember(ctx, res, key, anchor)
	return res, nil
}

// anchor returns the bucket-free replay key, or "" when the keyer has none.
func (s *onboardingService) anchor(fields map[string]any) string {
	a, ok := s.keyer.(anchorer)
	if !ok || s.replay == nil {
		return ""
	}
	key, err := a.Anchor(fields, s.cfg.PackageID)
	if err != nil {
		s.log.Warn().Err(err).Msg("deriving replay anchor failed")
		return ""
	}
	return key
}

func (s *onboardingService) replayed(ctx context.Context, keys ...string) *domain.ApplicationResult {
	if s.replay == nil {
		return nil
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		res, err := s.replay.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key).Msg("submission replay lookup failed")
			continue
		}
		if res == nil {
			continue
		}
		s.log.Info().Str("idempotency_key", key).Msg("replaying accepted submission")
		res.Replayed = true
		return res
	}
	return nil
}

func (s *onboardingService) remember(ctx context.Context, res *domain.ApplicationResult, keys ...string) {
	if s.replay == nil || s.cfg.ReplayTTL <= 0 {
		return
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.replay.Set(ctx, key, res, s.cfg.ReplayTTL); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key).Msg("storing submission for replay failed")
		}
	}
}
