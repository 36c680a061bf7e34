package models

import "encoding/json"

// Deal search properties copied onto a quote candidate.
const (
	PropObjectID     = "hs_object_id"
	PropOwnerID      = "hubspot_owner_id"
	PropJobNumber    = "job_number"
	PropDealName     = "dealname"
	PropCurrencyCode = "deal_currency_code"
	PropAmount       = "amount"
)

// QuoteCandidate is the flattened quote record built from a deal and its
// linked contact, company and sales rep.
type QuoteCandidate struct {
	JobNumber      string `json:"jobNumber"`
	DealID         string `json:"dealId"`
	TrescoRepID    string `json:"trescoRepId"`
	Currency       string `json:"currency"`
	DealName       string `json:"dealName"`
	Amount         string `json:"amount"`
	ContactID      *int64 `json:"contactId,omitempty"`
	CompanyID      *int64 `json:"companyId,omitempty"`
	Contact        string `json:"contact"`
	Company        string `json:"company"`
	TrescoRep      string `json:"trescoRep"`
	TrescoRepName  string `json:"trescoRepName"`
	TrescoRepPhone string `json:"trescoRepPhone"`
	TrescoRepEmail string `json:"trescoRepEmail"`
}

// NewQuoteCandidate copies the searched deal properties verbatim.
func NewQuoteCandidate(deal *SimpleObject) QuoteCandidate {
	p := deal.Properties
	return QuoteCandidate{
		JobNumber:   p[PropJobNumber],
		DealID:      p[PropObjectID],
		TrescoRepID: p[PropOwnerID],
		Currency:    p[PropCurrencyCode],
		DealName:    p[PropDealName],
		Amount:      p[PropAmount],
	}
}

// DealAmountUpdateRequest is the PATCH body for a deal amount change.
// Both fields accept a JSON number or a numeric string.
type DealAmountUpdateRequest struct {
	DealObjNum json.Number `json:"dealObjNum" binding:"required,numeric"`
	Amount     json.Number `json:"amount" binding:"required"`
}
