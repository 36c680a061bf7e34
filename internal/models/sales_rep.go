package models

import "strings"

// User search properties for a sales rep.
const (
	PropMainPhone       = "hs_main_phone"
	PropAdditionalPhone = "hs_additional_phone"
	PropFamilyName      = "hs_family_name"
	PropGivenName       = "hs_given_name"
	PropEmail           = "hs_email"
)

// SalesRep is the HubSpot user that owns a deal.
type SalesRep struct {
	OwnerID         string `json:"owner_id"`
	GivenName       string `json:"given_name"`
	FamilyName      string `json:"family_name"`
	Phone           string `json:"phone"`
	AdditionalPhone string `json:"additional_phone"`
	Email           string `json:"email"`
}

func SalesRepFromProperties(p map[string]string) *SalesRep {
	return &SalesRep{
		OwnerID:         p[PropOwnerID],
		GivenName:       p[PropGivenName],
		FamilyName:      p[PropFamilyName],
		Phone:           p[PropMainPhone],
		AdditionalPhone: p[PropAdditionalPhone],
		Email:           p[PropEmail],
	}
}

// FullName joins given and family name with a single space, keeping the
// separator even when either half is blank.
func (r *SalesRep) FullName() string {
	return strings.Join([]string{r.GivenName, r.FamilyName}, " ")
}
