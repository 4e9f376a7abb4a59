package analyzer

import (
	"errors"
	"fmt"

	"github.com/mvp-joe/export-diff/internal/diff"
	"github.com/mvp-joe/export-diff/internal/encoding"
	"github.com/mvp-joe/export-diff/internal/exports"
	"github.com/mvp-joe/export-diff/internal/patch"
)

// Sides of a diff, as reported by ParseError.
const (
	SideOld = "old"
	SideNew = "new"
)

// ErrParse is matched by every ParseError.
var ErrParse = errors.New("parse error")

// ParseError reports which input failed to parse.
type ParseError struct {
	Side string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s source: %v", e.Side, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// AnalyzeDiff reports the exported declarations added, removed or modified
// between oldCode and newCode. The old side is parsed first; the first parse
// failure aborts the whole diff.
func AnalyzeDiff(oldCode, newCode string) ([]diff.ChangeRecord, error) {
	before, err := exports.CollectSource([]byte(oldCode))
	if err != nil {
		return nil, &ParseError{Side: SideOld, Err: err}
	}

	after, err := exports.CollectSource([]byte(newCode))
	if err != nil {
		return nil, &ParseError{Side: SideNew, Err: err}
	}

	return diff.Compare(before, after), nil
}

// AnalyzeDiffEncoded runs AnalyzeDiff and serializes the result.
func AnalyzeDiffEncoded(oldCode, newCode, format string, pretty bool) ([]byte, error) {
	records, err := AnalyzeDiff(oldCode, newCode)
	if err != nil {
		return nil, err
	}
	return encoding.Encode(records, format, pretty)
}

// AnalyzePatch recovers the old source by reversing a unified diff against
// newCode, then diffs the two versions.
func AnalyzePatch(newCode, unifiedPatch string) ([]diff.ChangeRecord, error) {
	oldCode, err := patch.Reverse(newCode, unifiedPatch)
	if err != nil {
		return nil, fmt.Errorf("failed to recover old source: %w", err)
	}
	return AnalyzeDiff(oldCode, newCode)
}
