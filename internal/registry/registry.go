// Package registry provides a global registry for table definitions.
// Tables register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Definition describes one registered table: its identity and the factories
// that build its static layout and its rule variant. A fresh layout and a
// fresh rules instance are created per game session; rules carry mutable
// per-session state and must never be shared.
type Definition struct {
	ID    string // CLI slug, e.g. "party"
	Table pin.TableID
	Title string

	NewLayout func() *pin.Layout
	NewRules  func() pin.Rules
}

// Info contains display metadata about a registered table.
type Info struct {
	ID    string
	Table pin.TableID
	Title string
}

var (
	defs = make(map[string]Definition)
	mu   sync.RWMutex
)

// Register adds a table definition to the registry.
// Typically called from a table package's init() function.
// Panics if a table with the same ID is already registered.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()

	if def.ID == "" || def.NewLayout == nil || def.NewRules == nil {
		panic(fmt.Sprintf("registry: incomplete definition %+v", def.ID))
	}
	if _, exists := defs[def.ID]; exists {
		panic(fmt.Sprintf("registry: table %q already registered", def.ID))
	}
	defs[def.ID] = def
}

// List returns information about all registered tables, sorted by table
// number.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(defs))
	for _, d := range defs {
		result = append(result, Info{ID: d.ID, Table: d.Table, Title: d.Title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Table < result[j].Table
	})
	return result
}

// Lookup returns the definition for a table slug.
func Lookup(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := defs[id]
	if !ok {
		return Definition{}, fmt.Errorf("registry: unknown table %q", id)
	}
	return d, nil
}

// Exists checks if a table with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := defs[id]
	return ok
}
