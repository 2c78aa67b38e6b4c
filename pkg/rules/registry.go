package rules

import (
	"sort"
	"sync"
)

// globalRegistry is the single registry of rule codes.
var globalRegistry = &registry{defs: make(map[string]Def)}

type registry struct {
	mu   sync.RWMutex
	defs map[string]Def
}

// Def describes one rule code in the taxonomy.
type Def struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name" yaml:"name"`
	Group       string   `json:"group" yaml:"group"`
	Severity    Severity `json:"severity" yaml:"-"`
	Description string   `json:"description" yaml:"description"`

	// Advisory codes are reported but never fail the unit they are
	// scoped to.
	Advisory bool `json:"advisory,omitempty" yaml:"advisory,omitempty"`
}

// Register adds a rule definition to the registry.
func Register(def Def) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.defs[def.Code] = def
}

// GetByCode returns the definition for a code.
func GetByCode(code string) (Def, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.defs[code]
	return def, ok
}

// GetAll returns every registered definition, sorted by code.
func GetAll() []Def {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]Def, 0, len(globalRegistry.defs))
	for _, def := range globalRegistry.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// GetByGroup returns all definitions in a group, sorted by code.
func GetByGroup(group string) []Def {
	var defs []Def
	for _, def := range GetAll() {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	return defs
}

// Known reports whether a code exists in the taxonomy. Used to reject
// typos in exclude-code configuration.
func Known(code string) bool {
	_, ok := GetByCode(code)
	return ok
}
