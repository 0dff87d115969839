// Package risk derives risk evidence for the screening matrix from two
// independent sources: the confirmed diagnoses of the client, and the checked
// selections in the topic fields whose qualifier tags match per-risk keyword
// patterns. Evidence never confirms a risk; confirmation is a separate
// clinical decision recorded on the matrix item itself.
package risk

import (
	"regexp"

	"github.com/sis-intake-server/internal/catalog"
	"github.com/sis-intake-server/internal/domain"
)

// Evidence is the advisory trigger set for one risk. Both lists are
// deduplicated and ordered deterministically.
type Evidence struct {
	Diagnoses  []string `json:"diagnoses"`
	TopicAreas []string `json:"topicAreas"`
}

// HasAny reports whether any evidence exists.
func (e Evidence) HasAny() bool {
	return len(e.Diagnoses) > 0 || len(e.TopicAreas) > 0
}

// Assessment is the full matrix view for one risk.
type Assessment struct {
	Risk      string   `json:"risk"`
	ID        string   `json:"id"`
	Confirmed bool     `json:"confirmed"`
	Evidence  Evidence `json:"evidence"`
}

// tagRule matches a risk against a checked selection. Pattern runs over the
// selection's qualifier tags; area, when set, restricts the pattern to one
// topic field; areaAlone, when set, instead makes bare membership in that
// field sufficient while the pattern still runs in every field.
type tagRule struct {
	pattern   *regexp.Regexp
	area      domain.TopicArea
	areaAlone bool
}

// Keyword patterns per risk, case-insensitive over the German tag
// vocabulary. Falls are special-cased: any checked mobility item counts as
// fall evidence even without a matching tag, because reduced mobility itself
// is the risk factor.
var tagRules = map[string]tagRule{
	"Sturz":             {pattern: regexp.MustCompile(`(?i)sturz|unsicher|schwankend|rollator`), area: domain.AreaMobility, areaAlone: true},
	"Dekubitus":         {pattern: regexp.MustCompile(`(?i)bettlägerig|wunde|pergamenthaut|hämatom`)},
	"Harninkontinenz":   {pattern: regexp.MustCompile(`(?i)harninkontinenz|vorlage`)},
	"Stuhlinkontinenz":  {pattern: regexp.MustCompile(`(?i)stuhlinkontinenz`)},
	"Mangelernährung":   {pattern: regexp.MustCompile(`(?i)bmi|appetit|mangel`)},
	"Exsikkose":         {pattern: regexp.MustCompile(`(?i)trinkmenge|flüssigkeit`)},
	"Aspiration":        {pattern: regexp.MustCompile(`(?i)schluckstörung|aspiration`)},
	"Kontraktur":        {pattern: regexp.MustCompile(`(?i)lähmung|parese|immobilität`)},
	"Eigengefährdung":   {pattern: regexp.MustCompile(`(?i)hinlauftendenz|weglauftendenz|unruhe`)},
	"Soziale Isolation": {pattern: regexp.MustCompile(`(?i)rückzug|einzelgänger`), area: domain.AreaSocial},
	"Schmerz":           {pattern: regexp.MustCompile(`(?i)schmerz`), area: domain.AreaIllness},
}

// Matcher evaluates risk evidence against the catalog.
type Matcher struct {
	cat *catalog.Catalog
}

// NewMatcher returns a matcher over the given catalog.
func NewMatcher(cat *catalog.Catalog) *Matcher {
	return &Matcher{cat: cat}
}

// matches reports whether the rule fires for a checked selection.
func (r tagRule) matches(id domain.ItemID, rec domain.SelectionRecord) bool {
	if r.areaAlone && id.Area == r.area {
		return true
	}
	if r.area != "" && !r.areaAlone && id.Area != r.area {
		return false
	}
	for _, tag := range rec.SubTags {
		if r.pattern.MatchString(tag) {
			return true
		}
	}
	return false
}

// EvidenceFor collects the advisory triggers for one risk name. Matrix
// selections themselves never count as evidence.
func (m *Matcher) EvidenceFor(riskName string, diagnoses []string, store *domain.SelectionStore) Evidence {
	var ev Evidence

	seen := map[string]bool{}
	for _, diag := range diagnoses {
		entry, ok := m.cat.Diagnosis(diag)
		if !ok || seen[diag] {
			continue
		}
		for _, risk := range entry.Risks {
			if risk == riskName {
				ev.Diagnoses = append(ev.Diagnoses, diag)
				seen[diag] = true
				break
			}
		}
	}

	rule, ok := tagRules[riskName]
	if !ok {
		return ev
	}
	areaSeen := map[string]bool{}
	store.Range(func(id domain.ItemID, rec domain.SelectionRecord) bool {
		if !rec.Checked || id.Area == domain.AreaMatrix {
			return true
		}
		if rule.matches(id, rec) {
			label := id.Area.Label()
			if !areaSeen[label] {
				ev.TopicAreas = append(ev.TopicAreas, label)
				areaSeen[label] = true
			}
		}
		return true
	})
	return ev
}

// Assess evaluates every matrix risk: evidence from both sources plus the
// confirmation state read off the matrix selection record.
func (m *Matcher) Assess(diagnoses []string, store *domain.SelectionStore) []Assessment {
	names := m.cat.RiskNames()
	out := make([]Assessment, 0, len(names))
	for idx, name := range names {
		id := domain.ItemID{Area: domain.AreaMatrix, Category: domain.CategoryRisk, Index: idx}
		rec, _ := store.Get(id)
		out = append(out, Assessment{
			Risk:      name,
			ID:        id.String(),
			Confirmed: rec.Checked,
			Evidence:  m.EvidenceFor(name, diagnoses, store),
		})
	}
	return out
}

// RisksFor returns the risk names a diagnosis implies, restricted to risks
// that actually exist in the matrix.
func (m *Matcher) RisksFor(diagnosis string) []string {
	entry, ok := m.cat.Diagnosis(diagnosis)
	if !ok {
		return nil
	}
	known := map[string]bool{}
	for _, name := range m.cat.RiskNames() {
		known[name] = true
	}
	out := make([]string, 0, len(entry.Risks))
	for _, risk := range entry.Risks {
		if known[risk] {
			out = append(out, risk)
		}
	}
	return out
}
