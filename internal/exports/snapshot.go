package exports

import "sort"

const (
	// DefaultExport stands for any default export, whatever its form.
	DefaultExport = "default"

	// WildcardExport stands for a whole `export * from "..."` statement.
	WildcardExport = "*"
)

// Snapshot is the export table of one parsed module.
//
// Exported holds every name the module exposes to importers. Bodies maps a
// declared identifier to the canonical rendering of its declaration. Neither
// key set is a subset of the other: re-exported names have no local body and
// bare declarations are recorded without being exported.
type Snapshot struct {
	Exported map[string]struct{}
	Bodies   map[string]string
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Exported: make(map[string]struct{}),
		Bodies:   make(map[string]string),
	}
}

// IsExported reports whether name is exported.
func (s *Snapshot) IsExported(name string) bool {
	_, ok := s.Exported[name]
	return ok
}

// Body returns the canonical declaration recorded for name.
func (s *Snapshot) Body(name string) (string, bool) {
	body, ok := s.Bodies[name]
	return body, ok
}

// ExportedNames returns the exported names in ascending order.
func (s *Snapshot) ExportedNames() []string {
	names := make([]string, 0, len(s.Exported))
	for name := range s.Exported {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Snapshot) addExport(name string) {
	s.Exported[name] = struct{}{}
}

// setBody records a declaration body. Redeclarations overwrite.
func (s *Snapshot) setBody(name, body string) {
	s.Bodies[name] = body
}
