package search

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/cheapstop/backend-go/models"
)

// DefaultRadiusMiles applies when a request omits radiusMiles entirely.
const DefaultRadiusMiles = 5.0

// ParseItems splits a comma-separated query into trimmed item names,
// dropping blank entries. An empty result means the request is invalid.
func ParseItems(query string) []string {
	var items []string
	for _, part := range strings.Split(query, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// stableHash is FNV-1a over the string. Go's map hash is seeded per process,
// so prices derived from it would change across restarts; FNV keeps them
// identical for identical inputs everywhere.
func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// priceFor derives a deterministic pseudo-price for an item at a chain.
// Base is keyed off the name length (1..7 dollars-ish), jitter off a hash of
// name+chain so the same item costs slightly different amounts per store.
func priceFor(name, chainID string) float64 {
	base := math.Max(1.0, float64(len(name)%7)+1)
	jitter := float64(stableHash(name+chainID)%100) / 250.0
	return round2(base*0.99 + jitter)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// storeID builds the stable identifier from the chain and the store's
// coordinates, truncated (toward zero) at three decimals.
func storeID(chainID string, lat, lng float64) string {
	return fmt.Sprintf("%s-%d-%d",
		chainID,
		int64(math.Abs(math.Trunc(lat*1000))),
		int64(math.Abs(math.Trunc(lng*1000))))
}

// Run prices the parsed items at every candidate store around the user,
// drops candidates outside the radius, and returns the survivors sorted
// ascending by (totalPrice, distanceMiles). A radius of 0 disables the
// filter rather than excluding everything.
func Run(items []string, userLat, userLng, radiusMiles float64) []models.StoreResult {
	stores := []models.StoreResult{}

	for _, cand := range Candidates(userLat, userLng) {
		if radiusMiles != 0 && cand.Distance > radiusMiles {
			continue
		}

		enriched := make([]models.Item, 0, len(items))
		total := 0.0
		for _, name := range items {
			price := priceFor(name, cand.Chain.ID)
			enriched = append(enriched, models.Item{Name: name, Price: price, Quantity: 1})
			total += price
		}

		stores = append(stores, models.StoreResult{
			StoreID:       storeID(cand.Chain.ID, cand.Lat, cand.Lng),
			StoreName:     cand.Chain.Name,
			DistanceMiles: round2(cand.Distance),
			Lat:           round6(cand.Lat),
			Lng:           round6(cand.Lng),
			TotalPrice:    round2(total),
			Items:         enriched,
		})
	}

	sort.SliceStable(stores, func(i, j int) bool {
		if stores[i].TotalPrice != stores[j].TotalPrice {
			return stores[i].TotalPrice < stores[j].TotalPrice
		}
		return stores[i].DistanceMiles < stores[j].DistanceMiles
	})

	return stores
}
