package diff

import (
	"sort"

	"github.com/mvp-joe/export-diff/internal/exports"
)

// Compare classifies every name exported by either snapshot.
//
// Only captured bodies decide the outcome: a name whose body is absent on
// both sides yields no record even if its export status changed. Records are
// sorted by name.
func Compare(before, after *exports.Snapshot) []ChangeRecord {
	names := make(map[string]struct{}, len(before.Exported)+len(after.Exported))
	for name := range before.Exported {
		names[name] = struct{}{}
	}
	for name := range after.Exported {
		names[name] = struct{}{}
	}

	results := make([]ChangeRecord, 0)
	for name := range names {
		oldBody, inOld := before.Body(name)
		newBody, inNew := after.Body(name)

		var change ChangeType
		switch {
		case inOld && inNew:
			if oldBody == newBody {
				continue
			}
			change = Modified
		case !inOld && inNew:
			change = Added
		case inOld && !inNew:
			change = Removed
		default:
			continue
		}

		results = append(results, ChangeRecord{Name: name, Change: change})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})
	return results
}

// Summary counts records per change type.
func Summary(records []ChangeRecord) map[ChangeType]int {
	counts := map[ChangeType]int{Added: 0, Removed: 0, Modified: 0}
	for _, r := range records {
		counts[r.Change]++
	}
	return counts
}
