// models/sales.go
package models

import "time"

// SaleRecord is one parsed sale, flattened out of the events payload.
// The JSON keys are the tabular column names downstream consumers see.
type SaleRecord struct {
	TransactionDate string `json:"transaction_date"`
	CollectionName  string `json:"NFT_Group_Name"`
}

// CollectionCount is one row of the ranked per-collection tally.
type CollectionCount struct {
	Collection string `json:"Collection"`
	Sales      int    `json:"Sales"`
}

// SalesReport is the complete output of one pipeline run. Reports are
// built fresh per run and never mutated afterwards.
type SalesReport struct {
	NumSales    int               `json:"numSales"`
	EventCount  int               `json:"eventCount"`
	Ranked      []CollectionCount `json:"ranked"`
	Top         []CollectionCount `json:"top"`
	ChartTitle  string            `json:"chartTitle"`
	TopHeading  string            `json:"topHeading"`
	GeneratedAt time.Time         `json:"generatedAt"`
}
