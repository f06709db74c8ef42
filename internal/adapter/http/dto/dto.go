package dto

import (
	"encoding/json"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"
)

// --- Submission ---

// ApplicationRequest is the intake form body. Pointer fields distinguish an
// absent key from an empty one; absent keys never reach the provider.
// Required fields and consents are enforced by the onboarding service so the
// boundary reports them with one message.
type ApplicationRequest struct {
	CompanyName  *string `json:"company_name" binding:"omitempty,max=200"`
	AddressLine1 *string `json:"address_line1" binding:"omitempty,max=200"`
	AddressLine2 *string `json:"address_line2" binding:"omitempty,max=200"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=20"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	Website      *string `json:"website" binding:"omitempty,max=2048,website"`

	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=40"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	Fax       *string `json:"fax" binding:"omitempty,max=40"`
	Username  *string `json:"username" binding:"omitempty,max=100"`

	HasExistingProcessor  *bool   `json:"has_existing_processor"`
	ExistingProcessorName *string `json:"existing_processor_name" binding:"omitempty,max=200"`

	AccountHolderName *string `json:"account_holder_name" binding:"omitempty,max=200"`
	BankName          *string `json:"bank_name" binding:"omitempty,max=200"`
	AccountType       *string `json:"account_type" binding:"omitempty,oneof=checking savings business_checking business_savings"`
	RoutingNumber     *string `json:"routing_number" binding:"omitempty,routing_number"`
	AccountNumber     *string `json:"account_number" binding:"omitempty,numeric,min=4,max=17"`

	ProcessingServices []string `json:"processing_services" binding:"omitempty,max=50,dive,max=100,service_tag"`
	ValueAddedServices []string `json:"value_added_services" binding:"omitempty,max=50,dive,max=100,service_tag"`

	TermsAccepted          bool `json:"terms_accepted"`
	SecurityPolicyAccepted bool `json:"security_policy_accepted"`
}

// ToRecord converts the request into the domain intake record.
func (r *ApplicationRequest) ToRecord() *domain.MerchantIntakeRecord {
	return &domain.MerchantIntakeRecord{
		CompanyName:  domain.FromPtr(r.CompanyName),
		AddressLine1: domain.FromPtr(r.AddressLine1),
		AddressLine2: domain.FromPtr(r.AddressLine2),
		City:         domain.FromPtr(r.City),
		State:        domain.FromPtr(r.State),
		PostalCode:   domain.FromPtr(r.PostalCode),
		Country:      domain.FromPtr(r.Country),
		Website:      domain.FromPtr(r.Website),

		FirstName: domain.FromPtr(r.FirstName),
		LastName:  domain.FromPtr(r.LastName),
		Phone:     domain.FromPtr(r.Phone),
		Email:     domain.FromPtr(r.Email),
		Fax:       domain.FromPtr(r.Fax),
		Username:  domain.FromPtr(r.Username),

		HasExistingProcessor:  domain.FromPtr(r.HasExistingProcessor),
		ExistingProcessorName: domain.FromPtr(r.ExistingProcessorName),

		AccountHolderName: domain.FromPtr(r.AccountHolderName),
		BankName:          domain.FromPtr(r.BankName),
		AccountType:       domain.FromPtr(r.AccountType),
		RoutingNumber:     domain.FromPtr(r.RoutingNumber),
		AccountNumber:     domain.FromPtr(r.AccountNumber),

		ProcessingServices: r.ProcessingServices,
		ValueAddedServices: r.ValueAddedServices,

		TermsAccepted:          r.TermsAccepted,
		SecurityPolicyAccepted: r.SecurityPolicyAccepted,
	}
}

// ApplicationResponse is returned on an accepted submission. ApplicationID
// is null when the provider did not return one.
type ApplicationResponse struct {
	Success       bool    `json:"success"`
	ApplicationID *string `json:"applicationId"`
}

// --- Gateway provisioning ---

type GatewayRequest struct {
	Merchant *domain.ApprovedMerchant `json:"merchant"`
}

type GatewayResponse struct {
	Success bool            `json:"success"`
	Gateway json.RawMessage `json:"gateway"`
}
