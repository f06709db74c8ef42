package service

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/observability/metrics"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// Signature headers on provider event deliveries.
const (
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
)

// EventConfig is the event pipeline's share of the configuration.
type EventConfig struct {
	SigningSecret string // empty disables verification
	Tolerance     time.Duration
	DedupTTL      time.Duration
}

type eventService struct {
	sig      ports.SignatureService
	dedup    ports.EventDeduplicator // optional
	repo     ports.EventRepository   // optional
	registry *EventRegistry
	cfg      EventConfig
	metrics  *metrics.Metrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewEventService wires the event pipeline. dedup and repo may be nil; with
// neither, every delivery is dispatched.
func NewEventService(
	sig ports.SignatureService,
	dedup ports.EventDeduplicator,
	repo ports.EventRepository,
	registry *EventRegistry,
	cfg EventConfig,
	m *metrics.Metrics,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		sig:      sig,
		dedup:    dedup,
		repo:     repo,
		registry: registry,
		cfg:      cfg,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Receive verifies, classifies, deduplicates and dispatches one delivery.
// Handler failures are reported in the outcome, not as an error: the
// delivery has been accepted and will not be processed again.
func (s *eventService) Receive(ctx context.Context, body []byte, headers http.Header) (*ports.EventOutcome, error) {
	if s.cfg.SigningSecret != "" && !s.verify(body, headers) {
		s.metrics.IncEvent(string(domain.EventKindUnknown), metrics.EventOutcomeRejected)
		return nil, apperror.ErrInvalidSignature()
	}

	ev, err := domain.ParseInboundEvent(body, s.now().UTC())
	if err != nil {
		s.metrics.IncEvent(string(domain.EventKindUnknown), metrics.EventOutcomeRejected)
		return nil, apperror.ErrInvalidPayload(err)
	}

	outcome := &ports.EventOutcome{EventID: ev.ID, Kind: ev.Kind}
	logger := s.log.With().Str("event_id", ev.ID).Str("kind", string(ev.Kind)).Logger()

	fresh, logged := s.claim(ctx, ev, logger)
	if !fresh {
		outcome.Duplicate = true
		outcome.PriorStatus = s.priorStatus(ctx, ev.ID, logger)
		s.metrics.IncEvent(string(ev.Kind), metrics.EventOutcomeDuplicate)
		logger.Info().Str("prior_status", string(outcome.PriorStatus)).Msg("duplicate event ignored")
		return outcome, nil
	}

	outcome.HandlerErr = s.registry.Dispatch(ctx, ev)
	outcome.Dispatched = true

	status := domain.EventStatusProcessed
	var lastError *string
	if outcome.HandlerErr != nil {
		status = domain.EventStatusFailed
		msg := outcome.HandlerErr.Error()
		lastError = &msg
		s.metrics.IncEvent(string(ev.Kind), metrics.EventOutcomeFailed)
		logger.Error().Err(outcome.HandlerErr).Msg("event handler failed")
	} else {
		s.metrics.IncEvent(string(ev.Kind), metrics.EventOutcomeDispatched)
	}

	if logged {
		if err := s.repo.MarkProcessed(ctx, ev.ID, status, lastError); err != nil {
			logger.Warn().Err(err).Msg("recording event status failed")
		}
	}
	return outcome, nil
}

func (s *eventService) verify(body []byte, headers http.Header) bool {
	sig := strings.ToLower(strings.TrimSpace(headers.Get(HeaderSignature)))
	sig = strings.TrimPrefix(sig, "sha256=")
	rawTS := strings.TrimSpace(headers.Get(HeaderTimestamp))
	if sig == "" || rawTS == "" {
		return false
	}

	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return false
	}
	if s.cfg.Tolerance > 0 {
		drift := s.now().Sub(time.Unix(ts, 0))
		if drift < 0 {
			drift = -drift
		}
		if drift > s.cfg.Tolerance {
			return false
		}
	}

	return s.sig.Verify(s.cfg.SigningSecret, s.sig.BuildCanonicalString(ts, body), sig)
}

// claim reports whether this delivery is the first for its id, and whether
// it was written to the event log. Store failures let the event through.
func (s *eventService) claim(ctx context.Context, ev *domain.InboundEvent, logger zerolog.Logger) (fresh, logged bool) {
	if s.dedup != nil {
		ok, err := s.dedup.Claim(ctx, ev.ID, s.cfg.DedupTTL)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("event claim failed, continuing")
		case !ok:
			return false, false
		}
	}

	if s.repo != nil {
		inserted, err := s.repo.Insert(ctx, domain.NewEventRecord(ev))
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("event log insert failed, continuing")
		case !inserted:
			return false, false
		default:
			logged = true
		}
	}
	return true, logged
}

// priorStatus looks up how the first delivery of id ended. Empty when there
// is no event log or the record is not there.
func (s *eventService) priorStatus(ctx context.Context, id string, logger zerolog.Logger) domain.EventStatus {
	if s.repo == nil {
		return ""
	}
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Msg("event log lookup failed")
		return ""
	}
	if rec == nil {
		return ""
	}
	return rec.Status
}
