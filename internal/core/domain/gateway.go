package domain

// ApprovedMerchant is a merchant that passed underwriting. It carries the
// intake identity plus banking details and a timezone.
type ApprovedMerchant struct {
	MerchantID        string `json:"merchant_id,omitempty"`
	CompanyName       string `json:"company_name"`
	DBAName           string `json:"dba_name,omitempty"`
	AddressLine1      string `json:"address_line1,omitempty"`
	AddressLine2      string `json:"address_line2,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	Country           string `json:"country,omitempty"`
	Website           string `json:"website,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`
	BankName          string `json:"bank_name,omitempty"`
	AccountType       string `json:"account_type,omitempty"`
	RoutingNumber     string `json:"routing_number,omitempty"`
	AccountNumber     string `json:"account_number,omitempty"`
	Timezone          string `json:"timezone,omitempty"`
}

// GatewayFeatures are the feature flags sent with a gateway account.
type GatewayFeatures struct {
	CaptureHigherThanAuthorized bool `json:"capture_higher_than_authorized"`
}

// GatewayAccountRequest is the provider's gateway-creation body.
type GatewayAccountRequest struct {
	Name          string          `json:"name"`
	DBAName       string          `json:"dba_name,omitempty"`
	Address1      string          `json:"address_1,omitempty"`
	Address2      string          `json:"address_2,omitempty"`
	City          string          `json:"city,omitempty"`
	State         string          `json:"state,omitempty"`
	Zip           string          `json:"zip,omitempty"`
	Country       string          `json:"country,omitempty"`
	Website       string          `json:"website,omitempty"`
	ContactName   string          `json:"contact_name,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Timezone      string          `json:"timezone"`
	BankName      string          `json:"bank_name,omitempty"`
	AccountHolder string          `json:"bank_account_holder,omitempty"`
	AccountType   string          `json:"bank_account_type,omitempty"`
	RoutingNumber string          `json:"bank_routing_number,omitempty"`
	AccountNumber string          `json:"bank_account_number,omitempty"`
	FeeScheduleID string          `json:"fee_schedule_id,omitempty"`
	ExternalID    string          `json:"external_id,omitempty"`
	Features      GatewayFeatures `json:"features"`
}
