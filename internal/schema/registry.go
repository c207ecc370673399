package schema

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[Kind]Definition)
	registryMu sync.RWMutex
)

// Register adds a layout definition to the registry.
// Panics if a layout with the same kind is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Kind]; exists {
		panic(fmt.Sprintf("layout already registered: %s", def.Kind))
	}

	// Populate Columns from FieldSpecs if not set
	if len(def.Columns) == 0 && len(def.FieldSpecs) > 0 {
		def.Columns = make([]string, len(def.FieldSpecs))
		for i, spec := range def.FieldSpecs {
			def.Columns[i] = spec.Name
		}
	}

	registry[def.Kind] = def
}

// Get returns a layout definition by kind.
// Returns false if not found.
func Get(kind Kind) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[kind]
	return def, ok
}

// All returns all registered layouts.
// Sorted by group then by kind for consistent ordering.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Group != result[j].Group {
			return result[i].Group < result[j].Group
		}
		return result[i].Kind < result[j].Kind
	})

	return result
}

// ByGroup returns all layouts for a specific group.
// Sorted by kind for consistent ordering.
func ByGroup(group Group) []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var result []Definition
	for _, def := range registry {
		if def.Group == group {
			result = append(result, def)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// HeaderFor returns the header layout used by a form type.
// Returns false for unsupported form types.
func HeaderFor(formType string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, def := range registry {
		if def.Group != GroupHeader {
			continue
		}
		for _, ft := range def.FormTypes {
			if ft == formType {
				return def, true
			}
		}
	}
	return Definition{}, false
}

// FormTypes returns every supported form type, sorted.
func FormTypes() []string {
	var types []string
	for _, def := range ByGroup(GroupHeader) {
		types = append(types, def.FormTypes...)
	}
	sort.Strings(types)
	return types
}

// Count returns the number of registered layouts.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
