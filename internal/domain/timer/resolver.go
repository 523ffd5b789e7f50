package timer

import "time"

// Resolve picks the active timer for productID from candidates in storage order.
//
// Only the first stored timer for the product is evaluated: when it is outside its window the
// product has no active timer, even if a later timer for the same product would match.
func Resolve(candidates []*Timer, productID string, now time.Time) (*Timer, bool) {
	for _, t := range candidates {
		if t.ProductID() != productID {
			continue
		}
		if t.IsActiveAt(now) {
			return t, true
		}
		return nil, false
	}
	return nil, false
}
