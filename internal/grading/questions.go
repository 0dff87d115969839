package grading

// AnswerOption is one selectable severity value with its display label.
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Standard answer scales. Behaviour frequencies skip values on purpose: a
// "Häufig" answer counts 3 and "Täglich" counts 5 raw points.
var (
	IndependenceOptions = []AnswerOption{
		{Value: 0, Label: "Selbstständig"},
		{Value: 1, Label: "Überw. Selbst."},
		{Value: 2, Label: "Überw. Unselbst."},
		{Value: 3, Label: "Unselbstständig"},
	}
	AbilityOptions = []AnswerOption{
		{Value: 0, Label: "Vorhanden"},
		{Value: 1, Label: "Größtenteils"},
		{Value: 2, Label: "Gering"},
		{Value: 3, Label: "Nicht vorh."},
	}
	FrequencyOptions = []AnswerOption{
		{Value: 0, Label: "Nie"},
		{Value: 1, Label: "Selten"},
		{Value: 3, Label: "Häufig"},
		{Value: 5, Label: "Täglich"},
	}
)

// ModuleQuestions describes one assessment module for rendering and for the
// assisted-fill prompt.
type ModuleQuestions struct {
	Code      string         `json:"code"`
	Title     string         `json:"title"`
	Questions []string       `json:"questions"`
	Options   []AnswerOption `json:"options"`
}

// Modules lists the answerable assessment modules in NBA order. The therapy
// module (m5) is entered as a raw point value and has no question rows here.
var Modules = []ModuleQuestions{
	{
		Code:  "m1",
		Title: "Modul 1: Mobilität",
		Questions: []string{
			"Positionswechsel im Bett",
			"Halten einer stabilen Sitzposition",
			"Umsetzen",
			"Fortbewegen innerhalb des Wohnbereichs",
			"Treppensteigen",
		},
		Options: IndependenceOptions,
	},
	{
		Code:  "m2",
		Title: "Modul 2: Kognitive und kommunikative Fähigkeiten",
		Questions: []string{
			"Erkennen von Personen",
			"Örtliche Orientierung",
			"Zeitliche Orientierung",
			"Erinnern an wesentliche Ereignisse",
			"Steuern von Alltagshandlungen",
			"Treffen von Entscheidungen",
			"Verstehen von Sachverhalten",
			"Erkennen von Risiken",
			"Mitteilen von Bedürfnissen",
			"Verstehen von Aufforderungen",
			"Beteiligen an einem Gespräch",
		},
		Options: AbilityOptions,
	},
	{
		Code:  "m3",
		Title: "Modul 3: Verhaltensweisen und psychische Problemlagen",
		Questions: []string{
			"Motorisch geprägte Verhaltensauff.",
			"Nächtliche Unruhe",
			"Selbstschädigendes Verhalten",
			"Beschädigen von Gegenständen",
			"Physisch aggressives Verhalten",
			"Verbale Aggression",
			"Andere vokale Auffälligkeiten",
			"Abwehr pflegerischer Maßnahmen",
			"Wahnvorstellungen",
			"Ängste",
			"Antriebslosigkeit / Depressiv",
			"Sozial inadäquate Verhaltensweisen",
			"Sonstige inadäquate Handlungen",
		},
		Options: FrequencyOptions,
	},
	{
		Code:  "m4",
		Title: "Modul 4: Selbstversorgung",
		Questions: []string{
			"Waschen vorderer Oberkörper",
			"Körperpflege Kopfbereich",
			"Waschen Intimbereich",
			"Duschen und Baden",
			"An-/Auskleiden Oberkörper",
			"An-/Auskleiden Unterkörper",
			"Mundgerechtes Zubereiten",
			"Essen",
			"Trinken",
			"Benutzen einer Toilette",
			"Bewältigen Harninkontinenz",
			"Bewältigen Stuhlinkontinenz",
			"Ernährung (Sonde/Parenteral)",
		},
		Options: IndependenceOptions,
	},
	{
		Code:  "m6",
		Title: "Modul 6: Gestaltung des Alltagslebens und sozialer Kontakte",
		Questions: []string{
			"Gestaltung des Tagesablaufs",
			"Ruhen und Schlafen",
			"Sich beschäftigen",
			"Planungen vornehmen",
			"Interaktion mit Personen",
			"Kontaktpflege",
		},
		Options: IndependenceOptions,
	},
}
