package service

import "github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"

// FieldMapping renames one internal field to its provider slug.
type FieldMapping struct {
	Source string
	Target string
}

// FieldTable is a static translation table. Rows are only ever appended.
type FieldTable []FieldMapping

// IntakeFieldTable maps the intake form to the provider's application schema.
var IntakeFieldTable = FieldTable{
	{domain.FieldCompanyName, "business_legal_name"},
	{domain.FieldAddressLine1, "business_address_1"},
	{domain.FieldAddressLine2, "business_address_2"},
	{domain.FieldCity, "business_city"},
	{domain.FieldState, "business_state"},
	{domain.FieldPostalCode, "business_zip"},
	{domain.FieldCountry, "business_country"},
	{domain.FieldWebsite, "business_website"},
	{domain.FieldFirstName, "owner_first_name"},
	{domain.FieldLastName, "owner_last_name"},
	{domain.FieldPhone, "owner_phone"},
	{domain.FieldEmail, "owner_email"},
	{domain.FieldFax, "business_fax"},
	{domain.FieldUsername, "portal_username"},
	{domain.FieldHasExistingProcessor, "has_current_processor"},
	{domain.FieldExistingProcessorName, "current_processor_name"},
	{domain.FieldProcessingServices, "requested_services"},
	{domain.FieldValueAddedServices, "value_added_services"},
	{domain.FieldTermsAccepted, "agree_terms"},
	{domain.FieldSecurityPolicyAccepted, "agree_security_policy"},
}

var bankingFieldTable = FieldTable{
	{domain.FieldAccountHolderName, "bank_account_holder"},
	{domain.FieldBankName, "bank_name"},
	{domain.FieldAccountType, "bank_account_type"},
	{domain.FieldRoutingNumber, "bank_routing_number"},
	{domain.FieldAccountNumber, "bank_account_number"},
}

// FullFieldTable is IntakeFieldTable plus the banking rows.
var FullFieldTable = append(append(FieldTable{}, IntakeFieldTable...), bankingFieldTable...)

// TableFor returns the translation table for mode.
func TableFor(mode domain.IntakeMode) FieldTable {
	if mode == domain.IntakeModeFull {
		return FullFieldTable
	}
	return IntakeFieldTable
}

// MapFields copies every table row whose source key is present and non-nil
// in src, renamed to the target slug. Values are not converted.
func MapFields(src map[string]any, table FieldTable) map[string]any {
	out := make(map[string]any, len(table))
	for _, row := range table {
		v, ok := src[row.Source]
		if !ok || v == nil {
			continue
		}
		out[row.Target] = v
	}
	return out
}
