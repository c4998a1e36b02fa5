// models/event.go
package models

// EventsPage is the decoded body of an events-endpoint response.
// Fields below the top level are pointers so that a missing key can be
// told apart from a zero value after decoding.
type EventsPage struct {
	AssetEvents []AssetEvent `json:"asset_events"`
}

// AssetEvent is a single completed sale as the marketplace reports it.
type AssetEvent struct {
	CreatedDate *string `json:"created_date"`
	Asset       *Asset  `json:"asset"`
}

type Asset struct {
	Collection *Collection `json:"collection"`
}

type Collection struct {
	Name *string `json:"name"`
}
