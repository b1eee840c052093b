package entity

import "fmt"

// Region is a half-open span of character offsets within a document.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewRegion returns a Region with Start <= End.
func NewRegion(a, b int) Region {
	if a > b {
		a, b = b, a
	}
	return Region{Start: a, End: b}
}

// Empty reports whether the region covers no characters.
func (r Region) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether pt lies within the region, both endpoints included.
func (r Region) Contains(pt int) bool {
	return r.Start <= pt && pt <= r.End
}

// Cover returns the smallest region covering both r and other.
func (r Region) Cover(other Region) Region {
	return Region{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

func (r Region) String() string {
	return fmt.Sprintf("(%d, %d)", r.Start, r.End)
}

// CacheKey identifies an automatic code action aggregation. Keys compare field by field.
type CacheKey struct {
	DocumentID string
	Version    int32
	Region     Region
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s#%d:%s", k.DocumentID, k.Version, k.Region)
}
