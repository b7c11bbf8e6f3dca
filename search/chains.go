package search

// Chain is a named retailer template used to synthesize a candidate store.
type Chain struct {
	ID   string
	Name string
}

// Offset is a fixed lat/lng delta applied to the user's location to place a
// chain's store nearby. Offsets pair with baseChains by position.
type Offset struct {
	DLat float64
	DLng float64
}

// Example chain definitions. In a real app these would be discovered via
// retailer APIs; here three stores are placed near the user by applying
// small request-time offsets (~0.01 deg is roughly 0.6 miles depending on
// latitude).
var baseChains = []Chain{
	{ID: "walmart", Name: "Walmart Supercenter"},
	{ID: "target", Name: "Target"},
	{ID: "kroger", Name: "Kroger"},
}

var offsets = []Offset{
	{0.010, 0.012},
	{-0.008, 0.009},
	{0.006, -0.010},
}

// Candidate is a synthesized store location with its distance from the user.
type Candidate struct {
	Chain    Chain
	Lat      float64
	Lng      float64
	Distance float64
}

// Candidates synthesizes one store per configured chain around the user's
// location. The count is a configuration property, not a request parameter.
func Candidates(userLat, userLng float64) []Candidate {
	out := make([]Candidate, 0, len(baseChains))
	for i, chain := range baseChains {
		lat := userLat + offsets[i].DLat
		lng := userLng + offsets[i].DLng
		out = append(out, Candidate{
			Chain:    chain,
			Lat:      lat,
			Lng:      lng,
			Distance: Haversine(userLat, userLng, lat, lng),
		})
	}
	return out
}
