package models

// HubSpot object type names used in CRM paths.
const (
	ObjectDeals     = "deals"
	ObjectContacts  = "contacts"
	ObjectCompanies = "companies"
	ObjectUsers     = "users"
)

// Association type ids defined by HubSpot for deal links.
const (
	AssociationDealToContactPrimary = 1
	AssociationDealToCompanyPrimary = 5
)

// Search filter operators.
const (
	OperatorEQ  = "EQ"
	OperatorGTE = "GTE"
	OperatorLT  = "LT"
)

// SearchRequest is the body of a CRM object search.
type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	After        string        `json:"after,omitempty"`
}

// FilterGroup is a group of filters combined with AND.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value,omitempty"`
}

// SimpleObject is a single CRM record. Null property values decode as "".
type SimpleObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	Archived   bool              `json:"archived"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

type SearchResult struct {
	Total   int             `json:"total"`
	Results []*SimpleObject `json:"results"`
	Paging  *Paging         `json:"paging,omitempty"`
}

type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

type PagingNext struct {
	After string `json:"after"`
	Link  string `json:"link,omitempty"`
}

// AssociationType tags a link between two records.
type AssociationType struct {
	Category string `json:"category"`
	TypeID   int    `json:"typeId"`
	Label    string `json:"label,omitempty"`
}

// Association is one linked record in a v4 association page.
type Association struct {
	ToObjectID       int64             `json:"toObjectId"`
	AssociationTypes []AssociationType `json:"associationTypes"`
}

type AssociationPage struct {
	Results []Association `json:"results"`
	Paging  *Paging       `json:"paging,omitempty"`
}
