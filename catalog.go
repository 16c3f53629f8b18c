package isoskema

import (
	"sort"
	"sync"
)

var catalog struct {
	mu     sync.Mutex
	facets []*Facets
}

func register(f *Facets) {
	catalog.mu.Lock()
	catalog.facets = append(catalog.facets, f)
	catalog.mu.Unlock()
}

// Catalog returns every facet set declared so far, sorted by type name.
// Packages declare their facets at init, so importing a schema package is
// enough to make its types visible here.
func Catalog() []*Facets {
	catalog.mu.Lock()
	out := append([]*Facets(nil), catalog.facets...)
	catalog.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
