package domain

import "strings"

// IntakeMode selects which parts of the intake form are collected.
type IntakeMode string

const (
	// IntakeModeIntake excludes banking fields; they are collected later out-of-band.
	IntakeModeIntake IntakeMode = "intake"
	// IntakeModeFull includes banking fields.
	IntakeModeFull IntakeMode = "full"
)

// Internal field names of MerchantIntakeRecord. These are the keys the web
// form posts and the source side of the field mapping table.
const (
	FieldCompanyName            = "company_name"
	FieldAddressLine1           = "address_line1"
	FieldAddressLine2           = "address_line2"
	FieldCity                   = "city"
	FieldState                  = "state"
	FieldPostalCode             = "postal_code"
	FieldCountry                = "country"
	FieldWebsite                = "website"
	FieldFirstName              = "first_name"
	FieldLastName               = "last_name"
	FieldPhone                  = "phone"
	FieldEmail                  = "email"
	FieldFax                    = "fax"
	FieldUsername               = "username"
	FieldHasExistingProcessor   = "has_existing_processor"
	FieldExistingProcessorName  = "existing_processor_name"
	FieldAccountHolderName      = "account_holder_name"
	FieldBankName               = "bank_name"
	FieldAccountType            = "account_type"
	FieldRoutingNumber          = "routing_number"
	FieldAccountNumber          = "account_number"
	FieldProcessingServices     = "processing_services"
	FieldValueAddedServices     = "value_added_services"
	FieldTermsAccepted          = "terms_accepted"
	FieldSecurityPolicyAccepted = "security_policy_accepted"
)

// BankingFields are only ever emitted in IntakeModeFull.
var BankingFields = []string{
	FieldAccountHolderName,
	FieldBankName,
	FieldAccountType,
	FieldRoutingNumber,
	FieldAccountNumber,
}

// MerchantIntakeRecord is a merchant application as submitted by the web form.
// It is transformed once into an UpstreamApplicationRequest and never stored.
type MerchantIntakeRecord struct {
	CompanyName  Optional[string]
	AddressLine1 Optional[string]
	AddressLine2 Optional[string]
	City         Optional[string]
	State        Optional[string]
	PostalCode   Optional[string]
	Country      Optional[string]
	Website      Optional[string]

	FirstName Optional[string]
	LastName  Optional[string]
	Phone     Optional[string]
	Email     Optional[string]
	Fax       Optional[string]
	Username  Optional[string]

	HasExistingProcessor  Optional[bool]
	ExistingProcessorName Optional[string]

	AccountHolderName Optional[string]
	BankName          Optional[string]
	AccountType       Optional[string]
	RoutingNumber     Optional[string]
	AccountNumber     Optional[string]

	ProcessingServices []string
	ValueAddedServices []string

	TermsAccepted          bool
	SecurityPolicyAccepted bool
}

// Submittable reports whether both consents were given.
func (r *MerchantIntakeRecord) Submittable() bool {
	return r.TermsAccepted && r.SecurityPolicyAccepted
}

// MissingRequired lists required fields that are absent or blank.
func (r *MerchantIntakeRecord) MissingRequired() []string {
	required := []struct {
		name  string
		value Optional[string]
	}{
		{FieldCompanyName, r.CompanyName},
		{FieldFirstName, r.FirstName},
		{FieldLastName, r.LastName},
		{FieldEmail, r.Email},
	}

	var missing []string
	for _, f := range required {
		if v, ok := f.value.Get(); !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// HasBanking reports whether any banking field is present.
func (r *MerchantIntakeRecord) HasBanking() bool {
	return r.AccountHolderName.IsPresent() || r.BankName.IsPresent() ||
		r.AccountType.IsPresent() || r.RoutingNumber.IsPresent() ||
		r.AccountNumber.IsPresent()
}

// Values returns the present fields keyed by internal name. Banking fields
// are left out entirely unless mode is IntakeModeFull.
func (r *MerchantIntakeRecord) Values(mode IntakeMode) map[string]any {
	out := make(map[string]any)

	putString(out, FieldCompanyName, r.CompanyName)
	putString(out, FieldAddressLine1, r.AddressLine1)
	putString(out, FieldAddressLine2, r.AddressLine2)
	putString(out, FieldCity, r.City)
	putString(out, FieldState, r.State)
	putString(out, FieldPostalCode, r.PostalCode)
	putString(out, FieldCountry, r.Country)
	putString(out, FieldWebsite, r.Website)
	putString(out, FieldFirstName, r.FirstName)
	putString(out, FieldLastName, r.LastName)
	putString(out, FieldPhone, r.Phone)
	putString(out, FieldEmail, r.Email)
	putString(out, FieldFax, r.Fax)
	putString(out, FieldUsername, r.Username)
	if v, ok := r.HasExistingProcessor.Get(); ok {
		out[FieldHasExistingProcessor] = v
	}
	putString(out, FieldExistingProcessorName, r.ExistingProcessorName)

	if mode == IntakeModeFull {
		putString(out, FieldAccountHolderName, r.AccountHolderName)
		putString(out, FieldBankName, r.BankName)
		putString(out, FieldAccountType, r.AccountType)
		putString(out, FieldRoutingNumber, r.RoutingNumber)
		putString(out, FieldAccountNumber, r.AccountNumber)
	}

	if r.ProcessingServices != nil {
		out[FieldProcessingServices] = append([]string(nil), r.ProcessingServices...)
	}
	if r.ValueAddedServices != nil {
		out[FieldValueAddedServices] = append([]string(nil), r.ValueAddedServices...)
	}
	out[FieldTermsAccepted] = r.TermsAccepted
	out[FieldSecurityPolicyAccepted] = r.SecurityPolicyAccepted

	return out
}

func putString(m map[string]any, key string, o Optional[string]) {
	if v, ok := o.Get(); ok {
		m[key] = v
	}
}
