package migrate

import (
	"regexp"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// duplicateThreshold is the token-set similarity at or above which a
// migration candidate counts as already present in the target.
const duplicateThreshold = 0.80

var wordRegexp = regexp.MustCompile(`[a-z0-9]+`)

// tokenSet lowercases s and collects alphanumeric words longer than
// one character.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRegexp.FindAllString(strings.ToLower(s), -1) {
		if len(w) > 1 {
			set[w] = struct{}{}
		}
	}
	return set
}

// Similarity computes token-set similarity between two strings: the
// shared token count over the smaller set. Two empty token sets count
// as a match; one empty and one non-empty never do.
func Similarity(a, b string) float64 {
	sa, sb := tokenSet(a), tokenSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 1
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	if len(sb) < len(sa) {
		sa, sb = sb, sa
	}
	shared := 0
	for w := range sa {
		if _, ok := sb[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(sa))
}

// IsDuplicate reports whether candidate is close enough to existing to
// skip migrating it.
func IsDuplicate(candidate, existing string) bool {
	return Similarity(candidate, existing) >= duplicateThreshold
}

// existingItems flattens a document into comparable strings: every
// list bullet and every non-blank text line.
func existingItems(doc *adf.Document) []string {
	if doc == nil {
		return nil
	}
	var items []string
	for _, sec := range doc.Sections {
		switch content := sec.Content.(type) {
		case adf.List:
			items = append(items, content.Items...)
		case adf.Text:
			for _, line := range strings.Split(content.Value, "\n") {
				if strings.TrimSpace(line) != "" {
					items = append(items, line)
				}
			}
		}
	}
	return items
}
