package adf

// Document is the parsed in-memory representation of one ADF file.
// Section order is meaningful until the formatter re-canonicalizes it.
type Document struct {
	Version  string
	Sections []Section
}

// Section is one named block of a document: a key, an optional
// single-glyph decoration, content, and an optional weight tag.
type Section struct {
	Key        string
	Decoration string
	Content    Content
	Weight     Weight
}

// Weight distinguishes hard constraints from soft suggestions.
type Weight string

const (
	// WeightNone means the section carries no weight tag.
	WeightNone Weight = ""

	// WeightLoadBearing marks a hard constraint.
	WeightLoadBearing Weight = "load-bearing"

	// WeightAdvisory marks a soft suggestion.
	WeightAdvisory Weight = "advisory"
)

// ContentKind identifies one of the four content variants.
type ContentKind int

const (
	KindText ContentKind = iota
	KindList
	KindMap
	KindMetric
)

// String returns the lower-case variant name.
func (k ContentKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// Content is a closed variant with exactly four cases: Text, List, Map
// and Metric. The unexported marker method seals the set so switches
// over Kind() can be exhaustive.
type Content interface {
	Kind() ContentKind
	clone() Content

	isContent()
}

// Text holds free-form (possibly multi-line) section text.
type Text struct {
	Value string
}

// List holds an ordered sequence of bullet strings.
type List struct {
	Items []string
}

// MapEntry is one key/value pair of a Map section. Keys need not be
// unique within a section.
type MapEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Map holds an ordered sequence of key/value pairs.
type Map struct {
	Entries []MapEntry
}

// MetricEntry is one measured value with its ceiling and unit.
// Value and Ceiling are always finite.
type MetricEntry struct {
	Key     string  `yaml:"key"`
	Value   float64 `yaml:"value"`
	Ceiling float64 `yaml:"ceiling"`
	Unit    string  `yaml:"unit,omitempty"`
}

// Metric holds an ordered sequence of metric entries.
type Metric struct {
	Entries []MetricEntry
}

func (Text) Kind() ContentKind   { return KindText }
func (List) Kind() ContentKind   { return KindList }
func (Map) Kind() ContentKind    { return KindMap }
func (Metric) Kind() ContentKind { return KindMetric }

func (Text) isContent()   {}
func (List) isContent()   {}
func (Map) isContent()    {}
func (Metric) isContent() {}

func (t Text) clone() Content { return t }

func (l List) clone() Content {
	items := make([]string, len(l.Items))
	copy(items, l.Items)
	return List{Items: items}
}

func (m Map) clone() Content {
	entries := make([]MapEntry, len(m.Entries))
	copy(entries, m.Entries)
	return Map{Entries: entries}
}

func (m Metric) clone() Content {
	entries := make([]MetricEntry, len(m.Entries))
	copy(entries, m.Entries)
	return Metric{Entries: entries}
}

// Clone returns a deep copy of the document. The patcher clones once
// per batch so callers never observe partial application.
func (d Document) Clone() Document {
	sections := make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		sections[i] = s.Clone()
	}
	return Document{Version: d.Version, Sections: sections}
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	if s.Content != nil {
		out.Content = s.Content.clone()
	}
	return out
}

// FindSection returns the index of the first section with the given
// key, or -1 if absent. Duplicate keys are permitted in a parsed
// document; lookups intentionally use first-match and ignore later
// duplicates.
func (d Document) FindSection(key string) int {
	for i, s := range d.Sections {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Section returns a copy of the first section with the given key.
func (d Document) Section(key string) (Section, bool) {
	if i := d.FindSection(key); i >= 0 {
		return d.Sections[i].Clone(), true
	}
	return Section{}, false
}
