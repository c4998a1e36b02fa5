package sales

import (
	"sort"

	"github.com/H4estu/OpenSeer/models"
)

// topCollections caps the head slice shown in the summary table.
const topCollections = 3

// Aggregate tallies sales per collection and ranks the result descending
// by count. Collections with equal counts keep the order in which they
// first appeared in records. An empty input yields an empty ranked list,
// never an error.
func Aggregate(records []models.SaleRecord) []models.CollectionCount {
	index := make(map[string]int, len(records))
	ranked := make([]models.CollectionCount, 0, len(records))

	for _, record := range records {
		i, seen := index[record.CollectionName]
		if !seen {
			i = len(ranked)
			index[record.CollectionName] = i
			ranked = append(ranked, models.CollectionCount{Collection: record.CollectionName})
		}
		ranked[i].Sales++
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sales > ranked[j].Sales
	})

	return ranked
}

// TopK returns the head of the ranked list: min(topCollections, numSales)
// entries, fewer when the list itself is shorter.
func TopK(ranked []models.CollectionCount, numSales int) []models.CollectionCount {
	k := min(topCollections, numSales)
	if k > len(ranked) {
		k = len(ranked)
	}
	if k < 0 {
		k = 0
	}
	return ranked[:k]
}
