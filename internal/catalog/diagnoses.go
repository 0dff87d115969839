package catalog

import "github.com/sis-intake-server/internal/domain"

// NursingConcepts is the selectable vocabulary of care concepts.
var NursingConcepts = []string{
	"Aktivierend-therapeutische Pflege",
	"Validation (nach Naomi Feil)",
	"Psychobiographisches Pflegemodell (Böhm)",
	"Basale Stimulation",
	"Kinästhetik",
	"Bobath-Konzept",
	"Krohwinkel (AEDL/ABEDL)",
	"Strukturmodell (SIS)",
	"Wohnbereichskonzept",
	"Palliativ-Care Ansatz",
}

// SymptomItem is a diagnosis-specific observation anchored to the topic area
// where it becomes documentable once the clinician confirms it.
type SymptomItem struct {
	Text string           `json:"text"`
	Area domain.TopicArea `json:"area"`
}

// DiagnosisEntry links a diagnosis to its typical observations, the risk
// matrix entries it implies, and suggested measures and nursing concepts.
// Risk names may reference matrix entries that do not exist in the current
// catalog; such references simply never surface as evidence.
type DiagnosisEntry struct {
	Symptoms []SymptomItem `json:"symptoms"`
	Risks    []string      `json:"risks"`
	Measures []string      `json:"measures"`
	Concepts []string      `json:"concepts,omitempty"`
}

var diagnosisCatalog = map[string]DiagnosisEntry{
	// Neurologie
	"Apoplex (Schlaganfall)": {
		Symptoms: []SymptomItem{
			{Text: "Hemiparese / Lähmung", Area: domain.AreaMobility},
			{Text: "Aphasie / Sprachstörung", Area: domain.AreaCognition},
			{Text: "Dysphagie (Schluckstörung)", Area: domain.AreaIllness},
			{Text: "Vernachlässigung (Neglect)", Area: domain.AreaCognition},
		},
		Risks:    []string{"Sturz", "Kontraktur", "Dekubitus", "Aspiration", "Thrombose"},
		Measures: []string{"Bobath-Lagerung", "Schlucktraining", "Unterstützung beim Einkleiden"},
		Concepts: []string{"Bobath-Konzept", "Kinästhetik"},
	},
	"Demenz (Alzheimer/Vaskulär)": {
		Symptoms: []SymptomItem{
			{Text: "Desorientierung", Area: domain.AreaCognition},
			{Text: "Erkennt Personen nicht", Area: domain.AreaCognition},
			{Text: "Weglauftendenz / Hinlauftendenz", Area: domain.AreaCognition},
			{Text: "Nächtliche Unruhe", Area: domain.AreaCognition},
		},
		Risks:    []string{"Eigengefährdung", "Hinlauftendenz", "Sturz", "Herausforderndes Verhalten"},
		Measures: []string{"Validation nach Feil", "Biografiearbeit", "Tagesstruktur"},
		Concepts: []string{"Validation", "Böhm-Modell"},
	},
	"Morbus Parkinson": {
		Symptoms: []SymptomItem{
			{Text: "Rigor / Freezing", Area: domain.AreaMobility},
			{Text: "Tremor (Zittern)", Area: domain.AreaMobility},
			{Text: "Hypomimie (Maskengesicht)", Area: domain.AreaCognition},
			{Text: "Kleinschrittiges Gangbild", Area: domain.AreaMobility},
		},
		Risks:    []string{"Sturz", "Aspiration", "Kontraktur", "Schlafstörung"},
		Measures: []string{"Medikamente exakt nach Plan", "Gehtraining", "Logopädie", "Einsatz von Anti-Freezing-Techniken"},
	},
	"Multiple Sklerose (MS)": {
		Symptoms: []SymptomItem{
			{Text: "Fatigue (Erschöpfung)", Area: domain.AreaSocial},
			{Text: "Spastik", Area: domain.AreaMobility},
			{Text: "Sensibilitätsstörungen", Area: domain.AreaCognition},
			{Text: "Sehstörungen", Area: domain.AreaCognition},
		},
		Risks:    []string{"Dekubitus", "Sturz", "Harninkontinenz", "Schmerz"},
		Measures: []string{"Kühlende Waschungen", "Physiotherapie", "IK-Management", "Ressourcenorientierte Tagesplanung"},
	},
	"Epilepsie": {
		Symptoms: []SymptomItem{
			{Text: "Gefahr von Krampfanfällen", Area: domain.AreaIllness},
			{Text: "Aura-Wahrnehmung", Area: domain.AreaCognition},
		},
		Risks:    []string{"Sturz", "Eigengefährdung"},
		Measures: []string{"Anfallsprotokoll führen", "Sicherheit im Bad/Bett gewährleisten", "Bedarfsmedikation bereitstellen"},
	},
	"Polyneuropathie": {
		Symptoms: []SymptomItem{
			{Text: "Kribbeln/Brennen in Füßen", Area: domain.AreaIllness},
			{Text: "Taubheitsgefühl", Area: domain.AreaCognition},
			{Text: "Gleichgewichtsstörung", Area: domain.AreaMobility},
		},
		Risks:    []string{"Sturz", "Dekubitus", "Infektionsrisiko"},
		Measures: []string{"Regelmäßige Fußinspektion", "Vermeidung von Hitze/Kälte-Extremen", "Sturzprävention"},
	},

	// Kardiologie & Gefäße
	"Herzinsuffizienz (Global/NYHA)": {
		Symptoms: []SymptomItem{
			{Text: "Dyspnoe (Atemnot)", Area: domain.AreaIllness},
			{Text: "Ödeme (Beine/Lunge)", Area: domain.AreaIllness},
			{Text: "Belastungsintoleranz", Area: domain.AreaMobility},
		},
		Risks:    []string{"Thrombose", "Exsikkose", "Pneumonie", "Dekubitus"},
		Measures: []string{"Tägl. Gewichtskontrolle", "Atemerleichternde Lagerung", "Flüssigkeitsbilanz", "Kompressionstherapie"},
	},
	"Arterielle Hypertonie": {
		Symptoms: []SymptomItem{
			{Text: "Schwindel bei Belastung", Area: domain.AreaIllness},
			{Text: "Kopfschmerz", Area: domain.AreaIllness},
		},
		Risks:    []string{"Sturz"},
		Measures: []string{"Blutdruckkontrolle", "Salzarme Kost", "Medikamenten-Compliance fördern"},
	},
	"Vorhofflimmern (Arrhythmie)": {
		Symptoms: []SymptomItem{
			{Text: "Herzstolpern", Area: domain.AreaIllness},
			{Text: "Erhöhte Blutungsneigung", Area: domain.AreaIllness},
		},
		Risks:    []string{"Thrombose", "Sturz"},
		Measures: []string{"Puls-Kontrolle", "Überwachung Gerinnungshemmer (Marcumar/DOAK)", "CAVE: Sturzfolge-Blutung"},
	},
	"pAVK (Durchblutungsstörung)": {
		Symptoms: []SymptomItem{
			{Text: "Claudicatio (Schaufensterkrankheit)", Area: domain.AreaMobility},
			{Text: "Kühle Extremitäten", Area: domain.AreaIllness},
		},
		Risks:    []string{"Schmerz", "Infektionsrisiko", "Dekubitus"},
		Measures: []string{"Gehtraining", "Wattepolsterung der Zehen", "Keine engen Strümpfe"},
	},

	// Respiratorisch
	"COPD": {
		Symptoms: []SymptomItem{
			{Text: "Produktiver Husten", Area: domain.AreaIllness},
			{Text: "Luftnot bei Belastung", Area: domain.AreaMobility},
			{Text: "Angst bei Atemnot", Area: domain.AreaCognition},
		},
		Risks:    []string{"Pneumonie", "Aspiration", "Mangelernährung"},
		Measures: []string{"Inhalation", "Lippenbremse", "VATI-Lagerung", "Atemerleichternde Sitzpositionen"},
	},

	// Stoffwechsel
	"Diabetes Mellitus Typ 2": {
		Symptoms: []SymptomItem{
			{Text: "Wundheilungsstörung", Area: domain.AreaIllness},
			{Text: "Gefahr Hyper-/Hypoglykämie", Area: domain.AreaIllness},
			{Text: "Sensibilitätsstörung Füße", Area: domain.AreaMobility},
		},
		Risks:    []string{"Wundheilungsstörung", "Infektionsrisiko", "Dekubitus"},
		Measures: []string{"BZ-Kontrolle", "Fußinspektion", "Ernährungsplan", "Hautpflege mit harnstoffhaltigen Cremes"},
	},
	"Chronische Niereninsuffizienz (CNI)": {
		Symptoms: []SymptomItem{
			{Text: "Juckreiz (Pruritus)", Area: domain.AreaIllness},
			{Text: "Oligurie (wenig Urin)", Area: domain.AreaSelfCare},
		},
		Risks:    []string{"Exsikkose", "Hautdefekt"},
		Measures: []string{"Trinkmengenbeschränkung (falls verordnet)", "Eiweißarme Kost", "Spezielle Hautpflege"},
	},

	// Orthopädie
	"Rheumatoide Arthritis": {
		Symptoms: []SymptomItem{
			{Text: "Morgensteifigkeit", Area: domain.AreaMobility},
			{Text: "Gelenkschmerzen", Area: domain.AreaIllness},
			{Text: "Deformierte Handgelenke", Area: domain.AreaSelfCare},
		},
		Risks:    []string{"Schmerz", "Sturz", "Kontraktur"},
		Measures: []string{"Wärmeanwendungen", "Gelenkschutz-Training", "Bewegungsübungen", "Einsatz von Griffverdickungen"},
	},
	"Osteoporose": {
		Symptoms: []SymptomItem{
			{Text: "Frakturgefahr", Area: domain.AreaMobility},
			{Text: "Rundrücken (Kyphose)", Area: domain.AreaMobility},
		},
		Risks:    []string{"Sturz", "Schmerz"},
		Measures: []string{"Kalziumreiche Kost", "Bewegungsförderung", "Hüftprotektoren nutzen"},
	},
	"Z.n. Schenkelhalsfraktur": {
		Symptoms: []SymptomItem{
			{Text: "Schonhaltung", Area: domain.AreaMobility},
			{Text: "Angst vor erneutem Sturz", Area: domain.AreaCognition},
		},
		Risks:    []string{"Sturz", "Kontraktur", "Thrombose"},
		Measures: []string{"Mobilisation mit Gehhilfe", "Schmerzmanagement", "Kräftigungsübungen"},
	},

	// Psyche
	"Rezidivierende depressive Störung": {
		Symptoms: []SymptomItem{
			{Text: "Antriebslosigkeit", Area: domain.AreaSocial},
			{Text: "Interessenverlust", Area: domain.AreaSocial},
			{Text: "Schlafstörung", Area: domain.AreaSocial},
		},
		Risks:    []string{"Soziale Isolation", "Mangelernährung", "Schlafstörung"},
		Measures: []string{"Gesprächsangebote", "Motivation zur Gruppenteilnahme", "Tagesstrukturplan"},
	},

	// Inkontinenz & Haut
	"Harninkontinenz": {
		Symptoms: []SymptomItem{
			{Text: "Unwillkürlicher Harnabgang", Area: domain.AreaSelfCare},
			{Text: "Dranginkontinenz", Area: domain.AreaSelfCare},
			{Text: "Nächtliches Einnässen", Area: domain.AreaSelfCare},
		},
		Risks:    []string{"Harninkontinenz", "Dekubitus", "Sturz", "Infektionsrisiko"},
		Measures: []string{"Toilettentraining (Intervall-Gänge)", "Wechsel von Inkontinenzmaterial", "Hautschutz (Barrierecreme)", "Flüssigkeitsaufnahme am Tag fördern"},
	},
	"Inkontinenz (Stuhl)": {
		Symptoms: []SymptomItem{
			{Text: "Stuhlabgang unkontrolliert", Area: domain.AreaSelfCare},
			{Text: "Stuhlschmieren", Area: domain.AreaSelfCare},
		},
		Risks:    []string{"Stuhlinkontinenz", "Dekubitus", "Infektionsrisiko"},
		Measures: []string{"Darmmanagement", "Ballaststoffreiche Kost", "Hautpflege nach jedem Abgang"},
	},
	"Dekubitus": {
		Symptoms: []SymptomItem{
			{Text: "Hautrötung (nicht wegdrückbar)", Area: domain.AreaIllness},
			{Text: "Bestehender Gewebeschaden", Area: domain.AreaIllness},
		},
		Risks:    []string{"Dekubitus", "Infektionsrisiko", "Schmerz"},
		Measures: []string{"Lagerung nach Plan (z.B. 30°)", "Druckentlastende Matratze", "Eiweißreiche Ernährung"},
	},
}
