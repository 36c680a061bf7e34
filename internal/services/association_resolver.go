package services

import "quoterelay/internal/models"

// ResolvePrimaryAssociation picks the linked record id for a deal.
//
// The first record carrying desiredTypeID wins. When no record carries it the
// first record of the page is used regardless of its tags. ok is false only
// for an empty page.
//
// Falling back to the first record rather than reporting "no primary" is kept
// for existing quote consumers; whether that fallback is wanted is an open
// product question.
func ResolvePrimaryAssociation(page *models.AssociationPage, desiredTypeID int) (id int64, ok bool) {
	if page == nil || len(page.Results) == 0 {
		return 0, false
	}
	for _, rec := range page.Results {
		for _, t := range rec.AssociationTypes {
			if t.TypeID == desiredTypeID {
				return rec.ToObjectID, true
			}
		}
	}
	return page.Results[0].ToObjectID, true
}
