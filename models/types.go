package models

// SearchRequest represents the search request body.
// Query is a comma-separated list of items, e.g. "eggs, milk, chicken".
// RadiusMiles is a pointer so an absent field (defaults to 5.0) can be told
// apart from an explicit 0, which disables the radius filter.
type SearchRequest struct {
	Query       string   `json:"query"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	RadiusMiles *float64 `json:"radiusMiles,omitempty"`
}

// Item is a single shopping-list entry with its pseudo-price at one store.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// StoreResult represents one priced store candidate.
type StoreResult struct {
	StoreID       string  `json:"storeId"`
	StoreName     string  `json:"storeName"`
	DistanceMiles float64 `json:"distanceMiles"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	TotalPrice    float64 `json:"totalPrice"`
	Items         []Item  `json:"items"`
}

// SearchResponse represents the search response body.
type SearchResponse struct {
	Query       string        `json:"query"`
	Mode        string        `json:"mode"`
	TotalStores int           `json:"totalStores"`
	Stores      []StoreResult `json:"stores"`
}
