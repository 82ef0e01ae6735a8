// Package patch applies ordered batches of delta operations to a
// Document. Application is pure and all-or-nothing: the input document
// is cloned once per batch, so the first failing operation aborts the
// whole batch and the caller-visible original stays untouched with no
// rollback bookkeeping.
package patch

import (
	"errors"
	"strings"

	"github.com/adfkit/adf/pkg/adf"
)

var errUnknownOp = errors.New("unknown patch operation")

// Apply runs every patch in order against a copy of doc. It returns
// the new document, or a *adf.PatchError naming the first failing
// operation. On error the returned document is the unmodified input.
func Apply(doc adf.Document, patches []adf.Patch) (adf.Document, error) {
	out := doc.Clone()
	for _, p := range patches {
		if err := applyOne(&out, p); err != nil {
			return doc, err
		}
	}
	return out, nil
}

func applyOne(doc *adf.Document, p adf.Patch) error {
	switch p.Op {
	case adf.OpAddBullet:
		return addBullet(doc, p)
	case adf.OpReplaceBullet:
		return replaceBullet(doc, p)
	case adf.OpRemoveBullet:
		return removeBullet(doc, p)
	case adf.OpAddSection:
		return addSection(doc, p)
	case adf.OpReplaceSection:
		return replaceSection(doc, p)
	case adf.OpRemoveSection:
		return removeSection(doc, p)
	case adf.OpUpdateMetric:
		return updateMetric(doc, p)
	default:
		return failure(p, errUnknownOp)
	}
}

func failure(p adf.Patch, cause error) *adf.PatchError {
	index := -1
	if p.Op == adf.OpReplaceBullet || p.Op == adf.OpRemoveBullet {
		index = p.Index
	}
	return &adf.PatchError{
		Op:      string(p.Op),
		Section: p.Section,
		Index:   index,
		Err:     cause,
	}
}

// splitMapEntry splits a bullet string on the first colon into a map
// entry. Without a colon the whole string becomes the key with an
// empty value.
func splitMapEntry(s string) adf.MapEntry {
	if i := strings.Index(s, ":"); i >= 0 {
		return adf.MapEntry{
			Key:   strings.TrimSpace(s[:i]),
			Value: strings.TrimSpace(s[i+1:]),
		}
	}
	return adf.MapEntry{Key: strings.TrimSpace(s)}
}

func addBullet(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	switch content := doc.Sections[i].Content.(type) {
	case adf.List:
		content.Items = append(content.Items, p.Value)
		doc.Sections[i].Content = content
	case adf.Map:
		content.Entries = append(content.Entries, splitMapEntry(p.Value))
		doc.Sections[i].Content = content
	default:
		return failure(p, adf.ErrContentMismatch)
	}
	return nil
}

func replaceBullet(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	switch content := doc.Sections[i].Content.(type) {
	case adf.List:
		if p.Index < 0 || p.Index >= len(content.Items) {
			return failure(p, adf.ErrIndexOutOfRange)
		}
		content.Items[p.Index] = p.Value
		doc.Sections[i].Content = content
	case adf.Map:
		if p.Index < 0 || p.Index >= len(content.Entries) {
			return failure(p, adf.ErrIndexOutOfRange)
		}
		content.Entries[p.Index] = splitMapEntry(p.Value)
		doc.Sections[i].Content = content
	default:
		return failure(p, adf.ErrContentMismatch)
	}
	return nil
}

func removeBullet(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	switch content := doc.Sections[i].Content.(type) {
	case adf.List:
		if p.Index < 0 || p.Index >= len(content.Items) {
			return failure(p, adf.ErrIndexOutOfRange)
		}
		content.Items = append(content.Items[:p.Index], content.Items[p.Index+1:]...)
		doc.Sections[i].Content = content
	case adf.Map:
		if p.Index < 0 || p.Index >= len(content.Entries) {
			return failure(p, adf.ErrIndexOutOfRange)
		}
		content.Entries = append(content.Entries[:p.Index], content.Entries[p.Index+1:]...)
		doc.Sections[i].Content = content
	default:
		return failure(p, adf.ErrContentMismatch)
	}
	return nil
}

func addSection(doc *adf.Document, p adf.Patch) error {
	if doc.FindSection(p.Section) >= 0 {
		return failure(p, adf.ErrSectionExists)
	}
	content, err := p.Content.Content()
	if err != nil {
		return failure(p, err)
	}
	doc.Sections = append(doc.Sections, adf.Section{
		Key:        p.Section,
		Decoration: p.Decoration,
		Weight:     p.Weight,
		Content:    content,
	})
	return nil
}

func replaceSection(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	content, err := p.Content.Content()
	if err != nil {
		return failure(p, err)
	}
	doc.Sections[i].Content = content
	return nil
}

func removeSection(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	doc.Sections = append(doc.Sections[:i], doc.Sections[i+1:]...)
	return nil
}

func updateMetric(doc *adf.Document, p adf.Patch) error {
	i := doc.FindSection(p.Section)
	if i < 0 {
		return failure(p, adf.ErrSectionNotFound)
	}
	content, ok := doc.Sections[i].Content.(adf.Metric)
	if !ok {
		return failure(p, adf.ErrContentMismatch)
	}
	for j := range content.Entries {
		if content.Entries[j].Key == p.MetricKey {
			content.Entries[j].Value = p.MetricValue
			doc.Sections[i].Content = content
			return nil
		}
	}
	return failure(p, adf.ErrMetricNotFound)
}
