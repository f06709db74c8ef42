package service

import (
	"testing"

	"github.com/MerchantHausLLC/Productionhaus-sub001/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func tableTargets(table FieldTable) map[string]bool {
	out := make(map[string]bool, len(table))
	for _, row := range table {
		out[row.Target] = true
	}
	return out
}

func TestMapFields_RenamesAndPreservesTypes(t *testing.T) {
	src := map[string]any{
		domain.FieldCompanyName:          "Acme LLC",
		domain.FieldHasExistingProcessor: true,
		domain.FieldProcessingServices:   []string{"card_present"},
		domain.FieldTermsAccepted:        true,
	}

	out := MapFields(src, IntakeFieldTable)

	assert.Equal(t, "Acme LLC", out["business_legal_name"])
	assert.Equal(t, true, out["has_current_processor"])
	assert.Equal(t, []string{"card_present"}, out["requested_services"])
	assert.Equal(t, true, out["agree_terms"])
	assert.Len(t, out, 4)
}

func TestMapFields_DropsNilAndAbsent(t *testing.T) {
	src := map[string]any{
		domain.FieldCompanyName: "Acme",
		domain.FieldFax:         nil,
	}

	out := MapFields(src, IntakeFieldTable)

	assert.NotContains(t, out, "business_fax")
	assert.NotContains(t, out, "owner_email")
	assert.Len(t, out, 1)
}

func TestMapFields_IgnoresKeysOutsideTable(t *testing.T) {
	src := map[string]any{
		domain.FieldCompanyName:   "Acme",
		"favourite_colour":        "blue",
		domain.FieldRoutingNumber: "021000021",
	}

	out := MapFields(src, IntakeFieldTable)

	targets := tableTargets(IntakeFieldTable)
	for k := range out {
		assert.True(t, targets[k], "unexpected key %q", k)
	}
	assert.NotContains(t, out, "bank_routing_number")
}

func TestMapFields_EmptyInput(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, MapFields(nil, FullFieldTable))
		assert.Empty(t, MapFields(map[string]any{}, IntakeFieldTable))
	})
}

func TestMapFields_EmptyStringIsPresent(t *testing.T) {
	out := MapFields(map[string]any{domain.FieldAddressLine2: ""}, IntakeFieldTable)
	assert.Equal(t, "", out["business_address_2"])
}

// Every combination of present and absent fields must stay inside the
// table and must not emit absent fields.
func TestMapFields_NeverEmitsUnknownOrAbsentKeys(t *testing.T) {
	targets := tableTargets(FullFieldTable)
	sources := make([]string, 0, len(FullFieldTable))
	for _, row := range FullFieldTable {
		sources = append(sources, row.Source)
	}

	for mask := 0; mask < 1<<6; mask++ {
		src := map[string]any{"not_in_table": "x"}
		for i, name := range sources[:6] {
			if mask&(1<<i) != 0 {
				src[name] = "v"
			} else if i%2 == 0 {
				src[name] = nil
			}
		}

		out := MapFields(src, FullFieldTable)
		for k, v := range out {
			assert.True(t, targets[k])
			assert.NotNil(t, v)
		}
		assert.Equal(t, popcount(mask), len(out))
	}
}

func popcount(n int) int {
	c := 0
	for ; n > 0; n &= n - 1 {
		c++
	}
	return c
}

func TestTableFor(t *testing.T) {
	assert.Equal(t, IntakeFieldTable, TableFor(domain.IntakeModeIntake))
	assert.Equal(t, FullFieldTable, TableFor(domain.IntakeModeFull))
	assert.Len(t, FullFieldTable, len(IntakeFieldTable)+len(domain.BankingFields))
}

func TestIntakeRecord_BankingNeverLeaksInIntakeMode(t *testing.T) {
	rec := &domain.MerchantIntakeRecord{
		CompanyName:   domain.Some("Acme"),
		RoutingNumber: domain.Some("021000021"),
		AccountNumber: domain.Some("123456789"),
	}

	out := MapFields(rec.Values(domain.IntakeModeIntake), IntakeFieldTable)
	assert.NotContains(t, out, "bank_routing_number")
	assert.NotContains(t, out, "bank_account_number")

	full := MapFields(rec.Values(domain.IntakeModeFull), FullFieldTable)
	assert.Equal(t, "021000021", full["bank_routing_number"])
}
