// Package diff renders unified diffs between two versions of a target,
// used to show what a dry-run would change.
package diff

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
)

// Unified returns a unified diff from before to after, labelled with name.
// Identical inputs give an empty string.
func Unified(name, before, after string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits("", before, after)
	return fmt.Sprint(gotextdiff.ToUnified("a/"+name, "b/"+name, before, edits))
}

// Lines is Unified for content held as line slices without terminators.
func Lines(name string, before, after []string) string {
	return Unified(name, join(before), join(after))
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
