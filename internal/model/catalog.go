package model

import (
	"sort"
	"strings"
)

// Diagnostic records a non-fatal problem encountered during a discovery pass.
type Diagnostic struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Catalog is the complete result of one discovery pass: an ordered sequence
// of customizations plus the diagnostics collected along the way.
// A catalog is built once, sorted once, and never mutated afterwards; the
// next pass replaces it wholesale.
type Catalog struct {
	Customizations []Customization `json:"customizations"`
	Diagnostics    []Diagnostic    `json:"diagnostics,omitempty"`
}

// Sort orders the customizations by type (fixed order), then scope, then
// case-insensitive name, with path as the final tiebreaker. The sort is
// deterministic for any filesystem state.
func (c *Catalog) Sort() {
	sort.SliceStable(c.Customizations, func(i, j int) bool {
		a, b := c.Customizations[i], c.Customizations[j]
		if a.Type != b.Type {
			return a.Type.SortOrder() < b.Type.SortOrder()
		}
		if a.Scope != b.Scope {
			return a.Scope.SortOrder() < b.Scope.SortOrder()
		}
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
		return a.Path < b.Path
	})
}

// Len returns the number of customizations in the catalog.
func (c Catalog) Len() int {
	return len(c.Customizations)
}

// ByType returns the customizations of the given type, in catalog order.
func (c Catalog) ByType(t Type) []Customization {
	var out []Customization
	for _, cust := range c.Customizations {
		if cust.Type == t {
			out = append(out, cust)
		}
	}
	return out
}

// ByScope returns the customizations of the given scope, in catalog order.
func (c Catalog) ByScope(s Scope) []Customization {
	var out []Customization
	for _, cust := range c.Customizations {
		if cust.Scope == s {
			out = append(out, cust)
		}
	}
	return out
}

// Counts returns the number of customizations per type.
func (c Catalog) Counts() map[Type]int {
	counts := make(map[Type]int, len(typeOrder))
	for _, cust := range c.Customizations {
		counts[cust.Type]++
	}
	return counts
}

// Degraded returns the customizations whose status is not valid.
func (c Catalog) Degraded() []Customization {
	var out []Customization
	for _, cust := range c.Customizations {
		if !cust.Status.IsValid() {
			out = append(out, cust)
		}
	}
	return out
}

// Equal reports whether two catalogs are equal by value: same customizations
// in the same order and the same diagnostics in the same order.
func (c Catalog) Equal(other Catalog) bool {
	if len(c.Customizations) != len(other.Customizations) {
		return false
	}
	if len(c.Diagnostics) != len(other.Diagnostics) {
		return false
	}
	for i := range c.Customizations {
		if !c.Customizations[i].Equal(other.Customizations[i]) {
			return false
		}
	}
	for i := range c.Diagnostics {
		if c.Diagnostics[i] != other.Diagnostics[i] {
			return false
		}
	}
	return true
}
