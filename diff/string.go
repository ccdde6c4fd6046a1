package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Strings returns an inline diff of from and to, with deletions written
// as [-text-] and insertions as {+text+}.
func Strings(from, to string) string {
	dmp := diffpatch.New()
	lines := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, lines))
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
