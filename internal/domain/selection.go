package domain

import "sort"

// SelectionRecord is the per-client selection state of one catalog item. A
// record exists only once the item has been interacted with; an absent record
// is equivalent to a record with all fields at their zero values.
//
// Checked=false combined with non-empty SubTags or OriginVals is a legitimate
// transient state (e.g. a symptom unchecked by the user but still justified
// by a diagnosis); consumers must not assume the fields move together.
type SelectionRecord struct {
	Checked        bool     `json:"checked"`
	SubTags        []string `json:"subTags,omitempty"`
	DetailVal      string   `json:"detailVal,omitempty"`
	TimeVal        string   `json:"timeVal,omitempty"`
	TimeDays       int      `json:"timeDays,omitempty"`
	LastChangeDate string   `json:"lastChangeDate,omitempty"`
	OriginVals     []string `json:"originVals,omitempty"`
	GatewayVal     bool     `json:"gatewayVal,omitempty"`
}

// HasSubTag reports set membership in the qualifier tags.
func (r SelectionRecord) HasSubTag(tag string) bool {
	for _, t := range r.SubTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasOrigin reports whether a diagnosis justified this item.
func (r SelectionRecord) HasOrigin(diagnosis string) bool {
	for _, o := range r.OriginVals {
		if o == diagnosis {
			return true
		}
	}
	return false
}

// isZero reports whether the record carries no state worth keeping.
func (r SelectionRecord) isZero() bool {
	return !r.Checked && !r.GatewayVal &&
		len(r.SubTags) == 0 && len(r.OriginVals) == 0 &&
		r.DetailVal == "" && r.TimeVal == "" && r.TimeDays == 0 && r.LastChangeDate == ""
}

// SelectionUpdate is a partial change to a selection record. Nil fields are
// left untouched; set fields win on a per-field basis. Slice fields replace
// the whole set when present.
type SelectionUpdate struct {
	Checked        *bool     `json:"checked,omitempty"`
	SubTags        *[]string `json:"subTags,omitempty"`
	DetailVal      *string   `json:"detailVal,omitempty"`
	TimeVal        *string   `json:"timeVal,omitempty"`
	TimeDays       *int      `json:"timeDays,omitempty"`
	LastChangeDate *string   `json:"lastChangeDate,omitempty"`
	OriginVals     *[]string `json:"originVals,omitempty"`
	GatewayVal     *bool     `json:"gatewayVal,omitempty"`
}

// SelectionStore is the sparse mapping from item identifier to selection
// record. It is pure data owned by a single logical session; updates are
// serialized by the single-threaded session contract, so no locking is done
// here.
type SelectionStore struct {
	records map[ItemID]SelectionRecord
}

// NewSelectionStore returns an empty store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{records: make(map[ItemID]SelectionRecord)}
}

// Get returns the record for id. Absent records read as the zero record.
func (s *SelectionStore) Get(id ItemID) (SelectionRecord, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Update merges a partial change into the record for id, creating the record
// lazily on first interaction. Records reset back to all defaults are
// removed.
func (s *SelectionStore) Update(id ItemID, upd SelectionUpdate) {
	rec := s.records[id]
	if upd.Checked != nil {
		rec.Checked = *upd.Checked
	}
	if upd.SubTags != nil {
		rec.SubTags = append([]string(nil), (*upd.SubTags)...)
	}
	if upd.DetailVal != nil {
		rec.DetailVal = *upd.DetailVal
	}
	if upd.TimeVal != nil {
		rec.TimeVal = *upd.TimeVal
	}
	if upd.TimeDays != nil {
		rec.TimeDays = *upd.TimeDays
	}
	if upd.LastChangeDate != nil {
		rec.LastChangeDate = *upd.LastChangeDate
	}
	if upd.OriginVals != nil {
		rec.OriginVals = append([]string(nil), (*upd.OriginVals)...)
	}
	if upd.GatewayVal != nil {
		rec.GatewayVal = *upd.GatewayVal
	}

	if rec.isZero() {
		delete(s.records, id)
		return
	}
	s.records[id] = rec
}

// ToggleSubTag flips membership of tag in the record's qualifier tag set.
func (s *SelectionStore) ToggleSubTag(id ItemID, tag string) {
	rec := s.records[id]
	if rec.HasSubTag(tag) {
		tags := make([]string, 0, len(rec.SubTags)-1)
		for _, t := range rec.SubTags {
			if t != tag {
				tags = append(tags, t)
			}
		}
		rec.SubTags = tags
	} else {
		rec.SubTags = append(rec.SubTags, tag)
	}
	if rec.isZero() {
		delete(s.records, id)
		return
	}
	s.records[id] = rec
}

// AddOrigin records a diagnosis as justification for the item.
func (s *SelectionStore) AddOrigin(id ItemID, diagnosis string) {
	rec := s.records[id]
	if !rec.HasOrigin(diagnosis) {
		rec.OriginVals = append(rec.OriginVals, diagnosis)
	}
	s.records[id] = rec
}

// RemoveOrigin removes a diagnosis from every record it justified. User-set
// qualifier tags and detail values on the same records are preserved.
func (s *SelectionStore) RemoveOrigin(diagnosis string) {
	for id, rec := range s.records {
		if !rec.HasOrigin(diagnosis) {
			continue
		}
		origins := make([]string, 0, len(rec.OriginVals)-1)
		for _, o := range rec.OriginVals {
			if o != diagnosis {
				origins = append(origins, o)
			}
		}
		rec.OriginVals = origins
		if rec.isZero() {
			delete(s.records, id)
			continue
		}
		s.records[id] = rec
	}
}

// Reset removes the record for id entirely.
func (s *SelectionStore) Reset(id ItemID) {
	delete(s.records, id)
}

// Len returns the number of live records.
func (s *SelectionStore) Len() int {
	return len(s.records)
}

// Range calls fn for every record in identifier order. Iterating in a stable
// order keeps derived documents and evidence deterministic.
func (s *SelectionStore) Range(fn func(ItemID, SelectionRecord) bool) {
	ids := make([]ItemID, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		if !fn(id, s.records[id]) {
			return
		}
	}
}

// Snapshot returns a copy of all records keyed by wire identifier, suitable
// for JSON persistence.
func (s *SelectionStore) Snapshot() map[string]SelectionRecord {
	out := make(map[string]SelectionRecord, len(s.records))
	for id, rec := range s.records {
		out[id.String()] = rec
	}
	return out
}

// RestoreSnapshot replaces the store contents from a persisted snapshot.
// Entries whose identifiers no longer parse are skipped silently.
func (s *SelectionStore) RestoreSnapshot(snap map[string]SelectionRecord) {
	s.records = make(map[ItemID]SelectionRecord, len(snap))
	for key, rec := range snap {
		id, ok := ParseItemID(key)
		if !ok || rec.isZero() {
			continue
		}
		s.records[id] = rec
	}
}
