package mapping

import (
	"travel-booking/models"
	detailsModel "travel-booking/models/details"
)

// DetailsFromStore returns the extended fields of a catalog entry with
// camelCase keys. The document has no fixed shape, so this goes through
// the generic converter.
func DetailsFromStore(row detailsModel.Details) map[string]interface{} {
	out := GenericFromStore(row.Data)
	if out == nil {
		out = map[string]interface{}{}
	}
	return out
}

// DetailsToStore builds the details row for the entry with the given id
func DetailsToStore(parentID string, data map[string]interface{}) detailsModel.Details {
	doc := GenericToStore(data)
	if doc == nil {
		doc = map[string]interface{}{}
	}
	return detailsModel.Details{
		ID:   parentID,
		Data: models.Document(doc),
	}
}
