package geometry

import "iter"

// MaterialRegistry maps material names to stable indices in first-seen
// order. Indices are append-only: once assigned they never change, and
// the Nth distinct material receives index N-1.
type MaterialRegistry struct {
	indices map[string]int
	names   []string
}

// NewMaterialRegistry returns an empty registry.
func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{indices: make(map[string]int)}
}

// Register returns the index of material, assigning the next free index
// on first sight. Registering a known material is a no-op returning its
// original index.
func (r *MaterialRegistry) Register(material string) int {
	if idx, ok := r.indices[material]; ok {
		return idx
	}
	idx := len(r.names)
	r.indices[material] = idx
	r.names = append(r.names, material)
	return idx
}

// IndexOf returns the index of material, or an *UnknownMaterialError if
// it was never registered.
func (r *MaterialRegistry) IndexOf(material string) (int, error) {
	idx, ok := r.indices[material]
	if !ok {
		return 0, &UnknownMaterialError{Material: material}
	}
	return idx, nil
}

// Len returns the number of distinct materials registered.
func (r *MaterialRegistry) Len() int { return len(r.names) }

// Names returns the material names in insertion order. The slice is a
// copy; the index of each name is its position.
func (r *MaterialRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All iterates (material, index) pairs in insertion order. The sequence
// is restartable and reflects the registry at iteration time.
func (r *MaterialRegistry) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for i, name := range r.names {
			if !yield(name, i) {
				return
			}
		}
	}
}
