package tecplot

import "fmt"

// VariableSet is an ordered mapping from variable name to Array.
// Insertion order is preserved: it determines the dataset order in the
// container and the variable order in the macro, which Tecplot binds to
// plot axes by position.
type VariableSet struct {
	names  []string
	arrays map[string]*Array
}

// NewVariableSet creates an empty set.
func NewVariableSet() *VariableSet {
	return &VariableSet{arrays: make(map[string]*Array)}
}

// Add appends a named array to the set. Names must be unique.
func (vs *VariableSet) Add(name string, a *Array) error {
	if name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}
	if a == nil {
		return fmt.Errorf("variable %q: array cannot be nil", name)
	}
	if _, ok := vs.arrays[name]; ok {
		return fmt.Errorf("variable %q already present", name)
	}
	vs.names = append(vs.names, name)
	vs.arrays[name] = a
	return nil
}

// Names returns the variable names in insertion order.
func (vs *VariableSet) Names() []string {
	return append([]string(nil), vs.names...)
}

// Get returns the array for name, or nil if absent.
func (vs *VariableSet) Get(name string) *Array {
	return vs.arrays[name]
}

// Len returns the number of variables.
func (vs *VariableSet) Len() int { return len(vs.names) }

// maxRank returns the highest rank among the arrays. Zero for an
// empty set.
func (vs *VariableSet) maxRank() int {
	max := 0
	for _, name := range vs.names {
		if r := vs.arrays[name].Rank(); r > max {
			max = r
		}
	}
	return max
}
