package domain

// Agreement is a legal agreement offered by the firm. Clients are linked to
// the agreements they own through the agreements_ownerships table.
type Agreement struct {
	AgreementID   string `json:"id"`
	AgreementName string `json:"agreement_name"`
}
