package bundle

import "strings"

// minStemLength is the shortest shared prefix the stem rule accepts.
const minStemLength = 4

// minStemRatio is the minimum share of the longer string the shared
// prefix must cover. Guards against "React" matching "Reactive" while
// still letting "Config" match "Configure".
const minStemRatio = 0.66

// ResolveModules returns the module paths to load for the given task
// keywords: every default-load module, plus each on-demand module with
// at least one trigger matching a keyword. Order is deterministic:
// default-load first, then on-demand in manifest order, without
// duplicates.
func ResolveModules(m Manifest, keywords []string) []string {
	var paths []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, path := range m.DefaultLoad {
		add(path)
	}
	for _, entry := range m.OnDemand {
		if anyTriggerMatches(entry.Triggers, keywords) {
			add(entry.Path)
		}
	}
	return paths
}

func anyTriggerMatches(triggers, keywords []string) bool {
	for _, trigger := range triggers {
		for _, keyword := range keywords {
			if TriggerMatches(trigger, keyword) {
				return true
			}
		}
	}
	return false
}

// MatchedKeywords returns the keywords that match any of the triggers,
// in keyword order. Used for bundle diagnostics.
func MatchedKeywords(triggers, keywords []string) []string {
	var matched []string
	for _, keyword := range keywords {
		for _, trigger := range triggers {
			if TriggerMatches(trigger, keyword) {
				matched = append(matched, keyword)
				break
			}
		}
	}
	return matched
}

// TriggerMatches reports whether a trigger and a keyword match:
// exactly (case-insensitive), or via the prefix-stem rule — one is a
// prefix of the other, the shared prefix is at least minStemLength
// characters, and covers at least minStemRatio of the longer string.
func TriggerMatches(trigger, keyword string) bool {
	a := strings.ToLower(strings.TrimSpace(trigger))
	b := strings.ToLower(strings.TrimSpace(keyword))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if !strings.HasPrefix(longer, shorter) {
		return false
	}
	if len(shorter) < minStemLength {
		return false
	}
	return float64(len(shorter))/float64(len(longer)) >= minStemRatio
}
