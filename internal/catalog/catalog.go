// Package catalog provides the static reference data the intake core queries:
// the hierarchical SIS item catalog (topic areas, groups, item lists), the
// diagnosis catalog linking diagnoses to observation items, measures,
// concepts and risk names, and the care-grade benefits table.
//
// The catalog is read-only for the lifetime of a session. Every lookup that
// misses reports ok=false and never errors; dangling references are treated
// as "not found" so rendering and derivation are never halted by them.
package catalog

import (
	"github.com/sis-intake-server/internal/domain"
)

// FrequencyOption is a selectable frequency with the day interval used for
// due-date calculation ("Wöchentlich" → 7 days; 0 means on demand).
type FrequencyOption struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// Item is a single checkbox-style catalog entry. The optional slices declare
// which qualifier axes the selection record may populate: SubTags is the
// allowed qualifier tag vocabulary, DetailOptions the enumerated detail
// dropdown, FrequencyOptions the frequency dropdown, and DateRelevant flags
// a last-change date input.
type Item struct {
	Name             string            `json:"name"`
	SubTags          []string          `json:"subTags,omitempty"`
	DetailOptions    []string          `json:"detailOptions,omitempty"`
	FrequencyOptions []FrequencyOption `json:"frequencyOptions,omitempty"`
	DateRelevant     bool              `json:"dateRelevant,omitempty"`
}

// Gateway is the group-level yes/no screening question shown before the
// itemized lists of a group.
type Gateway struct {
	Question string `json:"question"`
	PosLabel string `json:"posLabel"`
	NegLabel string `json:"negLabel"`
}

// Group is one assessment group inside a topic field, holding one item list
// per category.
type Group struct {
	Title     string   `json:"title"`
	Gateway   *Gateway `json:"gateway,omitempty"`
	Risks     []Item   `json:"risks,omitempty"`
	Findings  []Item   `json:"findings,omitempty"`
	Measures  []Item   `json:"measures,omitempty"`
	Resources []Item   `json:"resources,omitempty"`
	Aids      []Item   `json:"aids,omitempty"`
}

// list returns the item list for a category code.
func (g *Group) list(c domain.Category) []Item {
	switch c {
	case domain.CategoryRisk:
		return g.Risks
	case domain.CategoryFinding:
		return g.Findings
	case domain.CategoryMeasure:
		return g.Measures
	case domain.CategoryResource:
		return g.Resources
	case domain.CategoryAid:
		return g.Aids
	default:
		return nil
	}
}

// TopicField is a top-level assessment domain with its groups.
type TopicField struct {
	Title  string  `json:"title"`
	Groups []Group `json:"groups"`
}

// Catalog bundles the static reference data.
type Catalog struct {
	fields    map[domain.TopicArea]TopicField
	diagnoses map[string]DiagnosisEntry
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		fields:    topicFields,
		diagnoses: diagnosisCatalog,
	}
}

// TopicField returns the field for a topic area.
func (c *Catalog) TopicField(area domain.TopicArea) (TopicField, bool) {
	tf, ok := c.fields[area]
	return tf, ok
}

// TopicAreas returns the areas present in the catalog in assessment order.
func (c *Catalog) TopicAreas() []domain.TopicArea {
	return []domain.TopicArea{
		domain.AreaCognition, domain.AreaMobility, domain.AreaIllness,
		domain.AreaSelfCare, domain.AreaSocial, domain.AreaDischarge,
		domain.AreaMatrix,
	}
}

// Resolve looks up the item an identifier refers to. Gateway identifiers and
// identifiers pointing outside the catalog resolve to ok=false; callers skip
// them silently.
func (c *Catalog) Resolve(id domain.ItemID) (Item, bool) {
	if id.Gateway {
		return Item{}, false
	}
	tf, ok := c.fields[id.Area]
	if !ok {
		return Item{}, false
	}
	if id.Group < 0 || id.Group >= len(tf.Groups) {
		return Item{}, false
	}
	list := tf.Groups[id.Group].list(id.Category)
	if id.Index < 0 || id.Index >= len(list) {
		return Item{}, false
	}
	return list[id.Index], true
}

// ResolveGroup looks up the group an identifier belongs to.
func (c *Catalog) ResolveGroup(area domain.TopicArea, group int) (Group, bool) {
	tf, ok := c.fields[area]
	if !ok {
		return Group{}, false
	}
	if group < 0 || group >= len(tf.Groups) {
		return Group{}, false
	}
	return tf.Groups[group], true
}

// FindCanonicalID searches the whole catalog for an item by its display text
// and returns its identifier. Used to link diagnosis-specific observation
// items to their canonical catalog entries.
func (c *Catalog) FindCanonicalID(text string) (domain.ItemID, bool) {
	categories := []domain.Category{
		domain.CategoryRisk, domain.CategoryFinding, domain.CategoryMeasure,
		domain.CategoryResource, domain.CategoryAid,
	}
	for _, area := range c.TopicAreas() {
		tf := c.fields[area]
		for gIdx := range tf.Groups {
			for _, cat := range categories {
				for idx, item := range tf.Groups[gIdx].list(cat) {
					if item.Name == text {
						return domain.ItemID{Area: area, Group: gIdx, Category: cat, Index: idx}, true
					}
				}
			}
		}
	}
	return domain.ItemID{}, false
}

// RiskNames returns the names of the risk matrix entries in grid order.
func (c *Catalog) RiskNames() []string {
	tf, ok := c.fields[domain.AreaMatrix]
	if !ok || len(tf.Groups) == 0 {
		return nil
	}
	names := make([]string, 0, len(tf.Groups[0].Risks))
	for _, item := range tf.Groups[0].Risks {
		names = append(names, item.Name)
	}
	return names
}

// RiskID returns the matrix identifier for a risk name.
func (c *Catalog) RiskID(riskName string) (domain.ItemID, bool) {
	tf, ok := c.fields[domain.AreaMatrix]
	if !ok || len(tf.Groups) == 0 {
		return domain.ItemID{}, false
	}
	for idx, item := range tf.Groups[0].Risks {
		if item.Name == riskName {
			return domain.ItemID{
				Area:     domain.AreaMatrix,
				Category: domain.CategoryRisk,
				Index:    idx,
			}, true
		}
	}
	return domain.ItemID{}, false
}

// Diagnosis returns the diagnosis catalog entry for a name.
func (c *Catalog) Diagnosis(name string) (DiagnosisEntry, bool) {
	entry, ok := c.diagnoses[name]
	return entry, ok
}

// DiagnosisNames returns all diagnosis names with a catalog entry.
func (c *Catalog) DiagnosisNames() []string {
	names := make([]string, 0, len(c.diagnoses))
	for name := range c.diagnoses {
		names = append(names, name)
	}
	return names
}
