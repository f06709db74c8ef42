package domain

// PackageIDField is the provider slug carrying the package identifier.
const PackageIDField = "package_id"

// UpstreamApplicationRequest is a MerchantIntakeRecord translated to the
// provider's schema, ready to be posted.
type UpstreamApplicationRequest struct {
	Fields         map[string]any
	PackageID      string
	IdempotencyKey string
}

// Body returns the JSON body: the mapped fields plus package_id.
func (r *UpstreamApplicationRequest) Body() map[string]any {
	body := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		body[k] = v
	}
	body[PackageIDField] = r.PackageID
	return body
}

// ApplicationResult is the outcome of an accepted submission. A nil
// ApplicationID means the provider accepted the application without
// returning an identifier; it is not a failure.
type ApplicationResult struct {
	ApplicationID  *string `json:"application_id"`
	IdempotencyKey string  `json:"idempotency_key"`
	Replayed       bool    `json:"-"`
}
