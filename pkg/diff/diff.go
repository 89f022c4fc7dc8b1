// Package diff reports line-level differences between a document and its
// regenerated form, for check mode.
package diff

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"
)

// Write emits a unified diff of current against generated to w and reports
// whether the two differ. Nothing is written when they are identical.
func Write(w io.Writer, name, current, generated string) (bool, error) {
	if current == generated {
		return false, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(generated),
		FromFile: name,
		ToFile:   name + " (regenerated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return true, err
	}
	_, err = io.WriteString(w, text)
	return true, err
}
