package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/ports"
	"github.com/MerchantHausLLC/Productionhaus-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// GatewayDefaults are the fixed values added to every gateway account.
type GatewayDefaults struct {
	Endpoint      string
	Timezone      string
	FeeScheduleID string
}

type gatewayProvisioner struct {
	client   ports.StaticKeyAuthenticatedClient
	defaults GatewayDefaults
	log      zerolog.Logger
}

// NewGatewayProvisioner creates a provisioner. Gateway creation is a single
// attempt; retry policy belongs to the caller.
func NewGatewayProvisioner(client ports.StaticKeyAuthenticatedClient, defaults GatewayDefaults, log zerolog.Logger) ports.GatewayProvisioner {
	return &gatewayProvisioner{client: client, defaults: defaults, log: log}
}

func (p *gatewayProvisioner) Provision(ctx context.Context, merchant *domain.ApprovedMerchant) (json.RawMessage, error) {
	if merchant == nil {
		return nil, apperror.Validation("Missing merchant data")
	}
	if p.defaults.Endpoint == "" {
		return nil, apperror.ErrConfiguration("gateway.url")
	}

	resp, err := p.client.PostJSON(ctx, p.defaults.Endpoint, BuildGatewayAccount(merchant, p.defaults))
	if err != nil {
		return nil, err
	}
	if !resp.Success() {
		p.log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(resp.Body)).
			Str("merchant_id", merchant.MerchantID).
			Msg("gateway creation rejected")
		return nil, apperror.ErrGatewayProvisioning(resp.StatusCode, string(resp.Body))
	}

	// The account exists once the provider answers 2xx, so an empty body is
	// still a success.
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		p.log.Info().Int("status", resp.StatusCode).Str("merchant_id", merchant.MerchantID).Msg("gateway created, empty response body")
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		return nil, apperror.ErrMalformedResponse("gateway response is not JSON")
	}

	p.log.Info().Str("merchant_id", merchant.MerchantID).Msg("gateway created")
	return json.RawMessage(body), nil
}

// BuildGatewayAccount translates an approved merchant into the provider's
// gateway body.
func BuildGatewayAccount(m *domain.ApprovedMerchant, defaults GatewayDefaults) *domain.GatewayAccountRequest {
	tz := m.Timezone
	if tz == "" {
		tz = defaults.Timezone
	}
	dba := m.DBAName
	if dba == "" {
		dba = m.CompanyName
	}

	return &domain.GatewayAccountRequest{
		Name:          m.CompanyName,
		DBAName:       dba,
		Address1:      m.AddressLine1,
		Address2:      m.AddressLine2,
		City:          m.City,
		State:         m.State,
		Zip:           m.PostalCode,
		Country:       m.Country,
		Website:       m.Website,
		ContactName:   strings.TrimSpace(m.FirstName + " " + m.LastName),
		Phone:         m.Phone,
		Email:         m.Email,
		Timezone:      tz,
		BankName:      m.BankName,
		AccountHolder: m.AccountHolderName,
		AccountType:   m.AccountType,
		RoutingNumber: m.RoutingNumber,
		AccountNumber: m.AccountNumber,
		FeeScheduleID: defaults.FeeScheduleID,
		ExternalID:    m.MerchantID,
		Features:      domain.GatewayFeatures{CaptureHigherThanAuthorized: false},
	}
}
