package attribute

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

const epsilon = 1e-9

// Set maps attribute keys to signed magnitudes. A Set is immutable once built:
// every operation that changes values returns a new Set, so a Set can be shared
// between the store, the aggregator and event listeners without copying.
//
// The zero value is an empty Set.
type Set struct {
	values map[Key]float64
}

// Empty returns a Set with no entries
func Empty() Set {
	return Set{}
}

// Of builds a Set from a map. The map is copied; zero magnitudes are kept so a
// writer can store a deliberate placeholder.
func Of(values map[Key]float64) Set {
	if len(values) == 0 {
		return Set{}
	}
	copied := make(map[Key]float64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Set{values: copied}
}

// Get returns the magnitude for a key, zero when absent
func (s Set) Get(key Key) float64 {
	return s.values[key]
}

// Has reports whether the key is present, even with a zero magnitude
func (s Set) Has(key Key) bool {
	_, ok := s.values[key]
	return ok
}

// With returns a copy of s with key set to value
func (s Set) With(key Key, value float64) Set {
	copied := make(map[Key]float64, len(s.values)+1)
	for k, v := range s.values {
		copied[k] = v
	}
	copied[key] = value
	return Set{values: copied}
}

// Merge returns a new Set holding the key-wise sum of s and other.
// Neither operand is modified.
func (s Set) Merge(other Set) Set {
	if len(other.values) == 0 {
		return s
	}
	if len(s.values) == 0 {
		return other
	}

	merged := make(map[Key]float64, len(s.values)+len(other.values))
	for k, v := range s.values {
		merged[k] = v
	}
	for k, v := range other.values {
		merged[k] += v
	}
	return Set{values: merged}
}

// IsValid reports whether at least one key holds a non-zero magnitude. Any
// non-zero value counts, however small; Equal is the tolerant comparison.
func (s Set) IsValid() bool {
	for _, v := range s.values {
		if v != 0 {
			return true
		}
	}
	return false
}

// Len returns the number of keys, including zero-valued ones
func (s Set) Len() int {
	return len(s.values)
}

// Keys returns the keys in sorted order
func (s Set) Keys() []Key {
	keys := make([]Key, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Map returns a copy of the underlying values
func (s Set) Map() map[Key]float64 {
	copied := make(map[Key]float64, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// Equal compares key-wise, treating missing keys as zero
func (s Set) Equal(other Set) bool {
	for k, v := range s.values {
		if math.Abs(v-other.values[k]) > epsilon {
			return false
		}
	}
	for k, v := range other.values {
		if _, ok := s.values[k]; ok {
			continue
		}
		if math.Abs(v) > epsilon {
			return false
		}
	}
	return true
}

// String renders the set as {key: value, ...} in key order
func (s Set) String() string {
	parts := make([]string, 0, len(s.values))
	for _, k := range s.Keys() {
		parts = append(parts, fmt.Sprintf("%s: %g", k, s.values[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the set as a flat JSON object
func (s Set) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.values)
}

// UnmarshalJSON decodes a flat JSON object
func (s *Set) UnmarshalJSON(data []byte) error {
	var values map[Key]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to unmarshal attribute set: %w", err)
	}
	*s = Of(values)
	return nil
}

// Fold merges every set into one
func Fold(sets ...Set) Set {
	acc := NewAccumulator()
	for _, s := range sets {
		acc.Add(s)
	}
	return acc.Set()
}
