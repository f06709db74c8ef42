package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventKind classifies an inbound provider notification.
type EventKind string

const (
	EventKindApplicationSubmitted   EventKind = "application.submitted"
	EventKindApplicationApproved    EventKind = "application.approved"
	EventKindApplicationDeclined    EventKind = "application.declined"
	EventKindMerchantReadyToProcess EventKind = "merchant.ready_to_process"
	EventKindGatewayCreated         EventKind = "gateway.created"
	EventKindUnknown                EventKind = "unknown"
)

// KnownEventKinds is the closed set of kinds with dedicated handling.
var KnownEventKinds = []EventKind{
	EventKindApplicationSubmitted,
	EventKindApplicationApproved,
	EventKindApplicationDeclined,
	EventKindMerchantReadyToProcess,
	EventKindGatewayCreated,
}

// ParseEventKind maps a provider type string to a kind. Matching ignores
// case and treats '_', '-' and '.' between words alike.
func ParseEventKind(raw string) EventKind {
	norm := normalizeEventType(raw)
	for _, k := range KnownEventKinds {
		if normalizeEventType(string(k)) == norm {
			return k
		}
	}
	return EventKindUnknown
}

func normalizeEventType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", ".", "", " ", "").Replace(s)
}

// ErrInvalidEventPayload is returned when an event body is not valid JSON.
var ErrInvalidEventPayload = errors.New("event payload is not valid JSON")

// InboundEvent is a parsed provider notification.
type InboundEvent struct {
	ID         string
	Kind       EventKind
	RawType    string
	Data       json.RawMessage
	Payload    json.RawMessage
	ReceivedAt time.Time
}

// ParseInboundEvent accepts any valid JSON document. Objects are read for
// id, type and data; when no id is supplied the content fingerprint is used
// so redeliveries of the same body still deduplicate.
func ParseInboundEvent(body []byte, receivedAt time.Time) (*InboundEvent, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidEventPayload
	}

	ev := &InboundEvent{
		Kind:       EventKindUnknown,
		Payload:    append(json.RawMessage(nil), body...),
		ReceivedAt: receivedAt,
	}

	// Fields are decoded one by one so a malformed type or data never
	// discards a valid id.
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err == nil {
		var rawType string
		if err := json.Unmarshal(env["type"], &rawType); err == nil {
			ev.RawType = rawType
			ev.Kind = ParseEventKind(rawType)
		}
		ev.Data = env["data"]
		ev.ID = rawID(env["id"])
	}
	if ev.ID == "" {
		ev.ID = "fp_" + Fingerprint(body)
	}
	return ev, nil
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// EventStatus is the processing state of a received event.
type EventStatus string

const (
	EventStatusReceived  EventStatus = "RECEIVED"
	EventStatusProcessed EventStatus = "PROCESSED"
	EventStatusFailed    EventStatus = "FAILED"
)

// EventRecord is the persisted receipt of an inbound event.
type EventRecord struct {
	ID          string      `json:"id"`
	Kind        EventKind   `json:"kind"`
	RawType     string      `json:"raw_type"`
	Payload     []byte      `json:"payload"`
	Status      EventStatus `json:"status"`
	LastError   *string     `json:"last_error,omitempty"`
	ReceivedAt  time.Time   `json:"received_at"`
	ProcessedAt *time.Time  `json:"processed_at,omitempty"`
}

// NewEventRecord creates a RECEIVED record for ev.
func NewEventRecord(ev *InboundEvent) *EventRecord {
	return &EventRecord{
		ID:         ev.ID,
		Kind:       ev.Kind,
		RawType:    ev.RawType,
		Payload:    ev.Payload,
		Status:     EventStatusReceived,
		ReceivedAt: ev.ReceivedAt,
	}
}
