// Package bundle resolves and merges ADF modules for one task. The
// manifest is itself a document; resolution matches task keywords
// against on-demand triggers and the merged output carries full
// diagnostics about why each module was or was not loaded.
package bundle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

// OnDemand is one on-demand module entry of the manifest.
type OnDemand struct {
	Path     string
	Triggers []string
	Budget   int // per-module token budget, 0 when undeclared
}

// Manifest is the semantic view over the distinguished manifest
// document. It is recomputed on every invocation and carries no
// identity across calls.
type Manifest struct {
	Role          string
	DefaultLoad   []string
	OnDemand      []OnDemand
	Rules         []string
	Sync          []adf.MapEntry
	Cadence       []adf.MapEntry
	MetricSources []adf.MapEntry
	Budget        int // global token budget, 0 when undeclared
}

// onDemandRegexp parses `path (Triggers on: k1, k2, ...) [budget: N]`.
// Both the trigger list and the budget are optional.
var onDemandRegexp = regexp.MustCompile(
	`^(\S+)(?:\s+\(Triggers on:\s*([^)]*)\))?(?:\s+\[budget:\s*(\d+)\])?$`)

// ParseManifest reads the well-known sections of a manifest document.
// Malformed on-demand entries are skipped rather than failing the
// whole parse.
func ParseManifest(doc adf.Document) Manifest {
	var m Manifest

	if sec, ok := doc.Section("ROLE"); ok {
		if text, ok := sec.Content.(adf.Text); ok {
			m.Role = text.Value
		}
	}
	m.DefaultLoad = listItems(doc, "DEFAULT_LOAD")
	m.Rules = listItems(doc, "RULES")
	m.Sync = mapEntries(doc, "SYNC")
	m.Cadence = mapEntries(doc, "CADENCE")
	m.MetricSources = mapEntries(doc, "METRIC_SOURCES")
	m.Budget = parseBudget(doc)

	for _, item := range listItems(doc, "ON_DEMAND") {
		entry, ok := parseOnDemand(item)
		if !ok {
			continue
		}
		m.OnDemand = append(m.OnDemand, entry)
	}

	return m
}

func parseOnDemand(item string) (OnDemand, bool) {
	m := onDemandRegexp.FindStringSubmatch(strings.TrimSpace(item))
	if m == nil || m[1] == "" {
		return OnDemand{}, false
	}
	entry := OnDemand{Path: m[1]}
	if m[2] != "" {
		for _, t := range strings.Split(m[2], ",") {
			if t = strings.TrimSpace(t); t != "" {
				entry.Triggers = append(entry.Triggers, t)
			}
		}
	}
	if m[3] != "" {
		budget, err := strconv.Atoi(m[3])
		if err != nil {
			return OnDemand{}, false
		}
		entry.Budget = budget
	}
	return entry, true
}

// parseBudget reads the global token budget from the BUDGET section:
// either inline text holding a number or a map with a "tokens" key.
func parseBudget(doc adf.Document) int {
	sec, ok := doc.Section("BUDGET")
	if !ok {
		return 0
	}
	switch content := sec.Content.(type) {
	case adf.Text:
		if n, err := strconv.Atoi(strings.TrimSpace(content.Value)); err == nil && n > 0 {
			return n
		}
	case adf.Map:
		for _, entry := range content.Entries {
			if entry.Key == "tokens" {
				if n, err := strconv.Atoi(strings.TrimSpace(entry.Value)); err == nil && n > 0 {
					return n
				}
			}
		}
	case adf.Metric:
		for _, entry := range content.Entries {
			if entry.Key == "tokens" && entry.Ceiling > 0 {
				return int(entry.Ceiling)
			}
		}
	}
	return 0
}

func listItems(doc adf.Document, key string) []string {
	sec, ok := doc.Section(key)
	if !ok {
		return nil
	}
	if list, ok := sec.Content.(adf.List); ok {
		return list.Items
	}
	return nil
}

func mapEntries(doc adf.Document, key string) []adf.MapEntry {
	sec, ok := doc.Section(key)
	if !ok {
		return nil
	}
	if m, ok := sec.Content.(adf.Map); ok {
		return m.Entries
	}
	return nil
}
