package bundle

import "github.com/adfkit/adf/pkg/adf"

// MergeDocuments folds source into target and returns a new document;
// neither input is mutated. Sections sharing a key merge pairwise;
// unseen source sections are appended in order.
//
// Merge rule per content pair: list+list, map+map and metric+metric
// concatenate (target entries first), text+text newline-joins skipping
// an empty side, and mismatched variants keep the target unchanged.
// The first-wins policy on mismatches is order-dependent by design —
// whichever document loads first owns the variant.
func MergeDocuments(target, source adf.Document) adf.Document {
	out := target.Clone()
	if out.Version == "" {
		out.Version = source.Version
	}

	for _, src := range source.Sections {
		i := out.FindSection(src.Key)
		if i < 0 {
			out.Sections = append(out.Sections, src.Clone())
			continue
		}
		out.Sections[i].Content = mergeContent(out.Sections[i].Content, src.Content)
		out.Sections[i].Weight = promoteWeight(out.Sections[i].Weight, src.Weight)
		if out.Sections[i].Decoration == "" {
			out.Sections[i].Decoration = src.Decoration
		}
	}
	return out
}

func mergeContent(target, source adf.Content) adf.Content {
	switch t := target.(type) {
	case adf.Text:
		if s, ok := source.(adf.Text); ok {
			return adf.Text{Value: joinText(t.Value, s.Value)}
		}
	case adf.List:
		if s, ok := source.(adf.List); ok {
			items := make([]string, 0, len(t.Items)+len(s.Items))
			items = append(items, t.Items...)
			items = append(items, s.Items...)
			return adf.List{Items: items}
		}
	case adf.Map:
		if s, ok := source.(adf.Map); ok {
			entries := make([]adf.MapEntry, 0, len(t.Entries)+len(s.Entries))
			entries = append(entries, t.Entries...)
			entries = append(entries, s.Entries...)
			return adf.Map{Entries: entries}
		}
	case adf.Metric:
		if s, ok := source.(adf.Metric); ok {
			entries := make([]adf.MetricEntry, 0, len(t.Entries)+len(s.Entries))
			entries = append(entries, t.Entries...)
			entries = append(entries, s.Entries...)
			return adf.Metric{Entries: entries}
		}
	}
	// Mismatched variants: first wins.
	return target
}

func joinText(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// promoteWeight keeps the stronger tag: load-bearing if either side is
// load-bearing, else advisory if either side is advisory.
func promoteWeight(a, b adf.Weight) adf.Weight {
	if a == adf.WeightLoadBearing || b == adf.WeightLoadBearing {
		return adf.WeightLoadBearing
	}
	if a == adf.WeightAdvisory || b == adf.WeightAdvisory {
		return adf.WeightAdvisory
	}
	return adf.WeightNone
}
