package performance

import (
	"math"
	"slices"
)

// altitudeKeyed is satisfied by table rows indexed by pressure altitude
type altitudeKeyed interface {
	altitudeFt() float64
}

// Bracket holds the two rows surrounding a target altitude and the
// fraction of the way from Lo to Hi. Out-of-range targets produce a
// bracket whose Lo and Hi are the same boundary row.
type Bracket[T any] struct {
	Lo T
	Hi T
	T  float64
}

// interpolateByAltitude brackets targetFt within rows. Rows are sorted by
// altitude (stable, so duplicates keep table order) and the first pair that
// contains the target wins. Negative targets are treated as sea level.
// ok is false only when rows is empty.
func interpolateByAltitude[T altitudeKeyed](rows []T, targetFt float64) (Bracket[T], bool) {
	if len(rows) == 0 {
		return Bracket[T]{}, false
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareFloat(a.altitudeFt(), b.altitudeFt())
	})

	alt := math.Max(0, targetFt)
	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		aAlt, bAlt := a.altitudeFt(), b.altitudeFt()
		if alt >= aAlt && alt <= bAlt {
			t := 0.0
			if aAlt != bAlt {
				t = (alt - aAlt) / (bAlt - aAlt)
			}
			return Bracket[T]{Lo: a, Hi: b, T: t}, true
		}
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	if alt <= first.altitudeFt() {
		return Bracket[T]{Lo: first, Hi: first, T: 0}, true
	}
	return Bracket[T]{Lo: last, Hi: last, T: 1}, true
}

// closestBy returns the item whose key is numerically nearest to want.
// Ties go to the item seen first. ok is false for an empty list.
func closestBy[T any](items []T, key func(T) float64, want float64) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestDist := math.Abs(key(best) - want)
	for _, cur := range items[1:] {
		if d := math.Abs(key(cur) - want); d < bestDist {
			best, bestDist = cur, d
		}
	}
	return best, true
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
