package domain

// ClientProfile carries the master data of the client being documented.
// Diagnoses are a set of names keyed into the diagnosis catalog; the
// per-diagnosis selection maps record which diagnosis-specific symptoms,
// measures and nursing concepts were confirmed during intake.
//
// CareGradeLabel is the currently granted grade as free text. It is
// independent of the computed grade, which is only ever a proposal and is
// never written back here automatically.
type ClientProfile struct {
	Name           string `json:"name"`
	DateOfBirth    string `json:"dob"`
	Ward           string `json:"ward,omitempty"`
	CareGradeLabel string `json:"careGradeLabel"`

	// Legal representation and advance directives.
	RepName           string `json:"repName,omitempty"`
	RepType           string `json:"repType,omitempty"`
	RepScope          string `json:"repScope,omitempty"`
	ProxyStatus       string `json:"proxyStatus,omitempty"`
	ProxyScope        string `json:"proxyScope,omitempty"`
	ProxyStorage      string `json:"proxyStorage,omitempty"`
	LivingWill        string `json:"livingWill,omitempty"`
	LivingWillStorage string `json:"livingWillStorage,omitempty"`

	EvalDate  string   `json:"evalDate,omitempty"`
	Allergies []string `json:"allergies,omitempty"`
	Cave      []string `json:"cave,omitempty"`

	Diagnoses         []string            `json:"diagnoses,omitempty"`
	DiagnosisSymptoms map[string][]string `json:"diagnosisSymptoms,omitempty"`
	DiagnosisMeasures map[string][]string `json:"diagnosisMeasures,omitempty"`
	DiagnosisConcepts map[string][]string `json:"diagnosisConcepts,omitempty"`

	// Intake conversation situation.
	ConvPartner       string `json:"convPartner,omitempty"`
	ConvAtmosphere    string `json:"convAtmosphere,omitempty"`
	ConvBarriers      string `json:"convBarriers,omitempty"`
	ConvBarrierDetail string `json:"convBarrierDetail,omitempty"`

	// NBA questionnaire state; nil until the assessment is started.
	Assessment *ModuleAnswers `json:"assessment,omitempty"`
}

// NewClientProfile returns a profile with the standard initial values: no
// granted grade and no legal representation on record.
func NewClientProfile() ClientProfile {
	return ClientProfile{
		CareGradeLabel: "PG 0",
		RepType:        "Keine Vertretung",
		ProxyStatus:    "Nicht vorhanden",
		LivingWill:     "Keine",
	}
}

// HasDiagnosis reports set membership in the selected diagnoses.
func (p *ClientProfile) HasDiagnosis(name string) bool {
	for _, d := range p.Diagnoses {
		if d == name {
			return true
		}
	}
	return false
}

// AddDiagnosis adds a diagnosis to the profile; duplicates are ignored.
func (p *ClientProfile) AddDiagnosis(name string) {
	if name == "" || p.HasDiagnosis(name) {
		return
	}
	p.Diagnoses = append(p.Diagnoses, name)
}

// RemoveDiagnosis removes a diagnosis and its per-diagnosis selections from
// the profile. It does not touch the selection store; the caller clears the
// provenance there separately.
func (p *ClientProfile) RemoveDiagnosis(name string) {
	out := make([]string, 0, len(p.Diagnoses))
	for _, d := range p.Diagnoses {
		if d != name {
			out = append(out, d)
		}
	}
	p.Diagnoses = out
	delete(p.DiagnosisSymptoms, name)
	delete(p.DiagnosisMeasures, name)
	delete(p.DiagnosisConcepts, name)
}

// ConfirmedSymptoms returns the confirmed symptom texts for a diagnosis.
func (p *ClientProfile) ConfirmedSymptoms(diagnosis string) []string {
	if p.DiagnosisSymptoms == nil {
		return nil
	}
	return p.DiagnosisSymptoms[diagnosis]
}

// CurrentGrade parses the granted care-grade label.
func (p *ClientProfile) CurrentGrade() CareGrade {
	return ParseCareGrade(p.CareGradeLabel)
}

// EnsureAssessment returns the questionnaire, initializing it to
// all-unanswered on first access.
func (p *ClientProfile) EnsureAssessment() *ModuleAnswers {
	if p.Assessment == nil {
		a := NewModuleAnswers()
		p.Assessment = &a
	}
	return p.Assessment
}

// toggleListEntry flips membership of text in the named per-diagnosis list.
func toggleListEntry(m map[string][]string, diagnosis, text string) map[string][]string {
	if m == nil {
		m = make(map[string][]string)
	}
	list := m[diagnosis]
	for i, t := range list {
		if t == text {
			m[diagnosis] = append(list[:i:i], list[i+1:]...)
			return m
		}
	}
	m[diagnosis] = append(list, text)
	return m
}

// ToggleSymptom flips a confirmed diagnosis-specific symptom and reports
// whether it is now confirmed.
func (p *ClientProfile) ToggleSymptom(diagnosis, text string) bool {
	p.DiagnosisSymptoms = toggleListEntry(p.DiagnosisSymptoms, diagnosis, text)
	return contains(p.DiagnosisSymptoms[diagnosis], text)
}

// ToggleMeasure flips a confirmed diagnosis-specific measure.
func (p *ClientProfile) ToggleMeasure(diagnosis, text string) bool {
	p.DiagnosisMeasures = toggleListEntry(p.DiagnosisMeasures, diagnosis, text)
	return contains(p.DiagnosisMeasures[diagnosis], text)
}

// ToggleConcept flips a confirmed nursing concept.
func (p *ClientProfile) ToggleConcept(diagnosis, text string) bool {
	p.DiagnosisConcepts = toggleListEntry(p.DiagnosisConcepts, diagnosis, text)
	return contains(p.DiagnosisConcepts[diagnosis], text)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
