package migrate

import (
	"sort"

	"github.com/google/uuid"

	"github.com/adfkit/adf/pkg/adf"
)

// Plan is the full routing plan for one source document. Plans carry
// no identity across invocations; the ID only labels persisted plan
// files.
type Plan struct {
	ID      string   `yaml:"id"`
	Records []Record `yaml:"records"`

	Stay    []Record `yaml:"-"`
	Migrate []Record `yaml:"-"`

	// TargetModules is the distinct set of modules referenced by
	// MIGRATE records, in first-reference order.
	TargetModules []string `yaml:"target_modules"`

	// BySection counts MIGRATE records per target section.
	BySection map[string]int `yaml:"by_section"`

	StayCount    int `yaml:"stay_count"`
	MigrateCount int `yaml:"migrate_count"`
}

// Classify routes every element and builds the plan. When existing is
// non-nil, MIGRATE candidates whose text is near-identical to an item
// already in it are downgraded to STAY.
func Classify(elements []Element, existing *adf.Document) Plan {
	plan := Plan{
		ID:        uuid.NewString(),
		BySection: make(map[string]int),
	}
	items := existingItems(existing)

	for _, el := range elements {
		rec := classifyElement(el)

		if rec.Decision == DecisionMigrate {
			for _, item := range items {
				if IsDuplicate(rec.Text, item) {
					rec.Decision = DecisionStay
					rec.Weight = adf.WeightNone
					rec.Reason = "already present in target"
					break
				}
			}
		}

		plan.Records = append(plan.Records, rec)
		if rec.Decision == DecisionStay {
			plan.Stay = append(plan.Stay, rec)
		} else {
			plan.Migrate = append(plan.Migrate, rec)
			plan.BySection[rec.TargetSection]++
			if !contains(plan.TargetModules, rec.TargetModule) {
				plan.TargetModules = append(plan.TargetModules, rec.TargetModule)
			}
		}
	}

	plan.StayCount = len(plan.Stay)
	plan.MigrateCount = len(plan.Migrate)
	return plan
}

// Patches converts the plan's MIGRATE records into per-module patch
// batches: a missing target section is added as a weighted list, then
// each record appends one bullet. Module keys come back sorted for
// deterministic application order.
func (p Plan) Patches(moduleDocs map[string]adf.Document) map[string][]adf.Patch {
	batches := make(map[string][]adf.Patch)
	seen := make(map[string]map[string]bool) // module -> section added

	for _, rec := range p.Migrate {
		doc := moduleDocs[rec.TargetModule]
		if seen[rec.TargetModule] == nil {
			seen[rec.TargetModule] = make(map[string]bool)
		}
		if doc.FindSection(rec.TargetSection) < 0 && !seen[rec.TargetModule][rec.TargetSection] {
			batches[rec.TargetModule] = append(batches[rec.TargetModule], adf.Patch{
				Op:      adf.OpAddSection,
				Section: rec.TargetSection,
				Weight:  rec.Weight,
				Content: &adf.ContentSpec{Kind: "list"},
			})
			seen[rec.TargetModule][rec.TargetSection] = true
		}
		batches[rec.TargetModule] = append(batches[rec.TargetModule], adf.Patch{
			Op:      adf.OpAddBullet,
			Section: rec.TargetSection,
			Value:   rec.Text,
		})
	}
	return batches
}

// Modules returns the plan's target modules sorted for deterministic
// iteration.
func (p Plan) Modules() []string {
	out := append([]string(nil), p.TargetModules...)
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
