package schema

import "fmt"

// LocationData identifies one neighborhood by its administrative triple:
// province (il), district (ilce) and neighborhood (mahalle). Matching is
// exact and case-sensitive.
type LocationData struct {
	Il      string `json:"il" bson:"il"`
	Ilce    string `json:"ilce" bson:"ilce"`
	Mahalle string `json:"mahalle" bson:"mahalle"`
}

// Key returns the composite document key of a location.
func (l LocationData) Key() string {
	return fmt.Sprintf("%s-%s-%s", l.Il, l.Ilce, l.Mahalle)
}

// IsComplete reports whether all three parts of the triple are present.
func (l LocationData) IsComplete() bool {
	return l.Il != "" && l.Ilce != "" && l.Mahalle != ""
}
