package site

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/germanamz/irena/pkg/carousel"
)

// DiffSlides returns a unified diff between two slide listings, one line per
// slide. It returns "" when the listings are identical.
func DiffSlides(section string, before, after []carousel.Item) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(slideListing(before)),
		B:        difflib.SplitLines(slideListing(after)),
		FromFile: section + " (before)",
		ToFile:   section + " (after)",
		Context:  1,
	}

	result, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("site: diff %s: %w", section, err)
	}

	return result, nil
}

func slideListing(items []carousel.Item) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s\t%s", it.ID, it.Title)
		if it.Price > 0 {
			fmt.Fprintf(&b, "\t%g", it.Price)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
