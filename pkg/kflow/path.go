package kflow

import "strconv"

// PathMask is a set of logical execution paths. Each set bit is one path.
type PathMask uint64

// Sample paths used by the order demo and the tests. Callers declare their own
// with Bit.
const (
	PathA PathMask = 1 << 0
	PathB PathMask = 1 << 1
	PathC PathMask = 1 << 2
	All            = PathA | PathB | PathC
)

// Of wraps a raw mask value. Zero is accepted and selects no path.
func Of(mask uint64) PathMask {
	return PathMask(mask)
}

// Bit returns the mask with only bit n set.
func Bit(n uint) PathMask {
	return PathMask(1) << n
}

// Union ORs the given masks together.
func Union(masks ...PathMask) PathMask {
	var u PathMask
	for _, m := range masks {
		u |= m
	}
	return u
}

// Matches reports whether p and hookMask share at least one path.
func (p PathMask) Matches(hookMask PathMask) bool {
	return p&hookMask != 0
}

func (p PathMask) Mask() uint64 {
	return uint64(p)
}

func (p PathMask) String() string {
	return "0b" + strconv.FormatUint(uint64(p), 2)
}
