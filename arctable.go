package pathfollow

import "sort"

// ArcTable maps arc length to curve parameter.
//
// Entry i holds the cumulative length of a path at parameter
// i/(len(tab)-1), divided by the total length. The entries are monotonically
// non-decreasing, start at 0 and end at 1, unless the path has zero length, in
// which case every entry is 0.
type ArcTable []float64

// Remap converts the normalized arc length u into the path parameter that
// reaches that fraction of the total length. u is clamped to [0, 1].
//
// The table is searched for the first entry not less than u. The bracketing
// pair never starts before index 0, so u = 0 always interpolates between the
// first two entries. Tables with fewer than two entries return u unchanged.
func (tab ArcTable) Remap(u float64) float64 {
	u = clamp01(u)
	if len(tab) < 2 {
		return u
	}
	hi := sort.SearchFloat64s(tab, u)
	hi = min(max(hi, 1), len(tab)-1)
	lo := hi - 1

	segU := inverseLerp(tab[lo], tab[hi], u)
	return (float64(lo) + segU) / float64(len(tab)-1)
}

// IsMonotonic reports whether no entry is smaller than the one before it.
func (tab ArcTable) IsMonotonic() bool {
	return sort.Float64sAreSorted(tab)
}

func (tab ArcTable) clone() ArcTable {
	if tab == nil {
		return nil
	}
	out := make(ArcTable, len(tab))
	copy(out, tab)
	return out
}
