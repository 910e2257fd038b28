package dashboard

import "slices"

// Selection is the user's category and the products chosen within it.
type Selection struct {
	category    string
	productIDs  []int
	hasCategory bool
}

// Category returns the selected category, if any.
func (s Selection) Category() (string, bool) {
	return s.category, s.hasCategory
}

// ProductIDs returns the selected ids in selection order.
func (s Selection) ProductIDs() []int {
	return slices.Clone(s.productIDs)
}

// Contains reports whether id is selected.
func (s Selection) Contains(id int) bool {
	return slices.Contains(s.productIDs, id)
}

// Runnable reports whether a report can be requested for this selection.
func (s Selection) Runnable() bool {
	return s.hasCategory && len(s.productIDs) > 0
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
