package diff

// ChangeType classifies how an exported name changed between two versions.
type ChangeType string

const (
	Added    ChangeType = "Added"
	Removed  ChangeType = "Removed"
	Modified ChangeType = "Modified"
)

// ChangeRecord reports one changed export.
type ChangeRecord struct {
	Name   string     `json:"name" yaml:"name"`
	Change ChangeType `json:"change" yaml:"change"`
}
