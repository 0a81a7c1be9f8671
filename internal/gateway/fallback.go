package gateway

// FallbackPayload is the fixed degraded-mode body returned when a
// downstream service is unreachable.
type FallbackPayload struct {
	Message string `json:"message"`
}

// serviceNames maps each route family to its display name in the
// fallback message.
var serviceNames = map[string]string{
	"players":    "Player",
	"teams":      "Team",
	"matches":    "Match",
	"statistics": "Statistics",
}

// Families lists the proxied resource families in a stable order.
func Families() []string {
	return []string{"players", "teams", "matches", "statistics"}
}

// Fallback returns the canned payload for a route family, and whether
// the family is known.
func Fallback(family string) (FallbackPayload, bool) {
	name, ok := serviceNames[family]
	if !ok {
		return FallbackPayload{}, false
	}
	return FallbackPayload{
		Message: name + " service is currently unavailable. Please try again later.",
	}, true
}
