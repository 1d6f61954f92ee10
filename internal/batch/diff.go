package batch

import (
	diff "github.com/shogoki/gotextdiff"
)

// UnifiedDiff returns a unified diff from before to after, labelled with path.
// It is empty when the two are equal.
func UnifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	return string(diff.Diff(path, []byte(before), path, []byte(after)))
}
