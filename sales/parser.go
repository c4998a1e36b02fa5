package sales

import (
	"encoding/json"
	"fmt"

	"github.com/H4estu/OpenSeer/models"
)

// Parse decodes a raw events payload into the flat sale table, one row
// per event in encounter order. A payload whose event list is present
// but empty yields an empty table. The first structural mismatch fails
// the entire batch.
func Parse(raw json.RawMessage) ([]models.SaleRecord, error) {
	var page models.EventsPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ParseError{Err: err}
	}

	// A nil list means the asset_events key was absent or null, which is
	// distinct from an empty list.
	if page.AssetEvents == nil {
		return nil, &ParseError{Path: "asset_events"}
	}

	records := make([]models.SaleRecord, 0, len(page.AssetEvents))
	for i, event := range page.AssetEvents {
		switch {
		case event.Asset == nil:
			return nil, &ParseError{Path: fmt.Sprintf("asset_events[%d].asset", i)}
		case event.Asset.Collection == nil:
			return nil, &ParseError{Path: fmt.Sprintf("asset_events[%d].asset.collection", i)}
		case event.Asset.Collection.Name == nil:
			return nil, &ParseError{Path: fmt.Sprintf("asset_events[%d].asset.collection.name", i)}
		case event.CreatedDate == nil:
			return nil, &ParseError{Path: fmt.Sprintf("asset_events[%d].created_date", i)}
		}

		records = append(records, models.SaleRecord{
			TransactionDate: *event.CreatedDate,
			CollectionName:  *event.Asset.Collection.Name,
		})
	}

	return records, nil
}
