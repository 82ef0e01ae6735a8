package adf

import "fmt"

// PatchKind names one of the seven delta operations of the patch
// protocol. The wire spelling matches the YAML batch files the CLI
// reads.
type PatchKind string

const (
	OpAddBullet      PatchKind = "ADD_BULLET"
	OpReplaceBullet  PatchKind = "REPLACE_BULLET"
	OpRemoveBullet   PatchKind = "REMOVE_BULLET"
	OpAddSection     PatchKind = "ADD_SECTION"
	OpReplaceSection PatchKind = "REPLACE_SECTION"
	OpRemoveSection  PatchKind = "REMOVE_SECTION"
	OpUpdateMetric   PatchKind = "UPDATE_METRIC"
)

// Patch is one typed delta operation over a document. Batches are
// ordered arrays of patches, applied strictly in sequence and
// all-or-nothing.
//
// Field usage by operation:
//
//	ADD_BULLET       Section, Value
//	REPLACE_BULLET   Section, Index, Value
//	REMOVE_BULLET    Section, Index
//	ADD_SECTION      Section, Decoration, Weight, Content
//	REPLACE_SECTION  Section, Content
//	REMOVE_SECTION   Section
//	UPDATE_METRIC    Section, MetricKey, MetricValue
type Patch struct {
	Op          PatchKind    `yaml:"op"`
	Section     string       `yaml:"section"`
	Index       int          `yaml:"index,omitempty"`
	Value       string       `yaml:"value,omitempty"`
	Decoration  string       `yaml:"decoration,omitempty"`
	Weight      Weight       `yaml:"weight,omitempty"`
	Content     *ContentSpec `yaml:"content,omitempty"`
	MetricKey   string       `yaml:"metric_key,omitempty"`
	MetricValue float64      `yaml:"metric_value,omitempty"`
}

// ContentSpec is a flat, serialization-friendly description of section
// content used by ADD_SECTION and REPLACE_SECTION patches.
type ContentSpec struct {
	Kind    string        `yaml:"kind"` // text | list | map | metric
	Text    string        `yaml:"text,omitempty"`
	Items   []string      `yaml:"items,omitempty"`
	Entries []MapEntry    `yaml:"entries,omitempty"`
	Metrics []MetricEntry `yaml:"metrics,omitempty"`
}

// Content materializes the spec into a concrete content value. An
// empty spec yields empty text.
func (s *ContentSpec) Content() (Content, error) {
	if s == nil {
		return Text{}, nil
	}
	switch s.Kind {
	case "", "text":
		return Text{Value: s.Text}, nil
	case "list":
		return List{Items: append([]string(nil), s.Items...)}, nil
	case "map":
		return Map{Entries: append([]MapEntry(nil), s.Entries...)}, nil
	case "metric":
		return Metric{Entries: append([]MetricEntry(nil), s.Metrics...)}, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", s.Kind)
	}
}
