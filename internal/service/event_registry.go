package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"

	"github.com/rs/zerolog"
)

// EventHandler processes one inbound event.
type EventHandler func(ctx context.Context, ev *domain.InboundEvent) error

// EventRegistry routes events to handlers by kind. Kinds without a
// registered handler go to the fallback.
type EventRegistry struct {
	handlers map[domain.EventKind]EventHandler
	fallback EventHandler
}

// NewEventRegistry creates an empty registry. A nil fallback ignores
// unregistered kinds.
func NewEventRegistry(fallback EventHandler) *EventRegistry {
	if fallback == nil {
		fallback = func(context.Context, *domain.InboundEvent) error { return nil }
	}
	return &EventRegistry{
		handlers: make(map[domain.EventKind]EventHandler),
		fallback: fallback,
	}
}

// Register sets the handler for kind, replacing any previous one.
func (r *EventRegistry) Register(kind domain.EventKind, h EventHandler) {
	r.handlers[kind] = h
}

// Handles reports whether kind has a dedicated handler.
func (r *EventRegistry) Handles(kind domain.EventKind) bool {
	_, ok := r.handlers[kind]
	return ok
}

// Dispatch runs the handler for ev.Kind.
func (r *EventRegistry) Dispatch(ctx context.Context, ev *domain.InboundEvent) error {
	if h, ok := r.handlers[ev.Kind]; ok {
		return h(ctx, ev)
	}
	return r.fallback(ctx, ev)
}

// ErrMissingMerchant is returned when a ready-to-process event carries no
// merchant to provision.
var ErrMissingMerchant = errors.New("event data has no merchant")

// NewDefaultEventRegistry registers a logging handler for every known kind.
// With autoProvision, merchant.ready_to_process creates the gateway
// account from data.merchant.
func NewDefaultEventRegistry(provisioner ports.GatewayProvisioner, autoProvision bool, log zerolog.Logger) *EventRegistry {
	r := NewEventRegistry(func(_ context.Context, ev *domain.InboundEvent) error {
		log.Warn().Str("event_id", ev.ID).Str("type", ev.RawType).Msg("unhandled event type")
		return nil
	})

	for _, kind := range domain.KnownEventKinds {
		r.Register(kind, logEvent(log))
	}

	if autoProvision && provisioner != nil {
		r.Register(domain.EventKindMerchantReadyToProcess, provisionFromEvent(provisioner, log))
	}
	return r
}

func logEvent(log zerolog.Logger) EventHandler {
	return func(_ context.Context, ev *domain.InboundEvent) error {
		log.Info().
			Str("event_id", ev.ID).
			Str("kind", string(ev.Kind)).
			RawJSON("data", nonEmptyJSON(ev.Data)).
			Msg("event received")
		return nil
	}
}

type readyToProcessData struct {
	Merchant *domain.ApprovedMerchant `json:"merchant"`
}

func provisionFromEvent(provisioner ports.GatewayProvisioner, log zerolog.Logger) EventHandler {
	return func(ctx context.Context, ev *domain.InboundEvent) error {
		var data readyToProcessData
		if len(ev.Data) > 0 {
			if err := json.Unmarshal(ev.Data, &data); err != nil {
				return fmt.Errorf("decoding event data: %w", err)
			}
		}
		if data.Merchant == nil {
			return ErrMissingMerchant
		}

		gateway, err := provisioner.Provision(ctx, data.Merchant)
		if err != nil {
			return fmt.Errorf("provisioning gateway: %w", err)
		}
		log.Info().
			Str("event_id", ev.ID).
			Str("merchant_id", data.Merchant.MerchantID).
			RawJSON("gateway", gateway).
			Msg("gateway provisioned from event")
		return nil
	}
}

func nonEmptyJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}
	return raw
}
