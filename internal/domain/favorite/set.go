package favorite

import "slices"

// Set is an immutable, insertion-ordered set of product ids.
// Every mutation returns a new Set; the receiver is never modified.
type Set struct {
	ids []string
}

func NewSet(ids ...string) Set {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return Set{ids: out}
}

func (s Set) Has(productID string) bool {
	return slices.Contains(s.ids, productID)
}

func (s Set) With(productID string) Set {
	if productID == "" || s.Has(productID) {
		return s
	}
	ids := make([]string, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	return Set{ids: append(ids, productID)}
}

func (s Set) Without(productID string) Set {
	idx := slices.Index(s.ids, productID)
	if idx < 0 {
		return s
	}
	ids := make([]string, 0, len(s.ids)-1)
	ids = append(ids, s.ids[:idx]...)
	ids = append(ids, s.ids[idx+1:]...)
	return Set{ids: ids}
}

func (s Set) IDs() []string {
	return slices.Clone(s.ids)
}

func (s Set) Len() int {
	return len(s.ids)
}
