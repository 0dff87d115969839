package catalog

import "github.com/sis-intake-server/internal/domain"

// Shared qualifier vocabularies reused across item definitions.
var (
	SideTags        = []string{"Rechts", "Links", "Beidseits"}
	FrequencyTags   = []string{"Selten", "Häufig", "Ständig", "Schwankend"}
	OrientationTags = []string{"Zeitlich desorientiert", "Örtlich desorientiert", "Situativ desorientiert", "Personell desorientiert"}
	MobilityTags    = []string{"Bettlägerig", "Dreht sich selbst", "Transfer Sitz-Stand", "Geht sicher", "Geht unsicher / schwankend"}

	CompetenceLevels = []string{"Selbstständig", "Nicht selbstständig", "Kompensiert"}
	TransferDetails  = []string{"1 PK", "2 PK", "Lifter", "Rutschbrett", "Rollator", "Rollstuhl"}
	WashDetails      = []string{"Im Bett", "Am Waschbecken", "Duschstuhl", "Badewanne", "Waschtraining"}
	TargetDetails    = []string{"Mobilität", "Stabilisierung", "Heimkehr", "Wundheilung", "Schmerzfreiheit"}
	DestinationTags  = []string{"Zuhause", "Dauerpflege", "Reha", "Hospiz"}
)

// GeneralFrequencies is the standard frequency dropdown. The day interval
// feeds the next-due-date calculation; 0 marks on-demand entries.
var GeneralFrequencies = []FrequencyOption{
	{Label: "Täglich", Days: 1},
	{Label: "Morgens", Days: 1},
	{Label: "Abends", Days: 1},
	{Label: "2x tgl.", Days: 1},
	{Label: "3x tgl.", Days: 1},
	{Label: "Wöchentlich", Days: 7},
	{Label: "2x Wöchentlich", Days: 3},
	{Label: "Bei Bedarf", Days: 0},
	{Label: "Nachts", Days: 1},
}

var topicFields = map[domain.TopicArea]TopicField{
	domain.AreaCognition: {
		Title: "TF 1: Kognition und Kommunikation",
		Groups: []Group{
			{
				Title:   "Orientierung & Verstehen",
				Gateway: &Gateway{Question: "Kognitive Einschränkungen?", PosLabel: "Nein", NegLabel: "Ja"},
				Resources: []Item{
					{Name: "Vollständig orientiert"},
					{Name: "Erkennt Personen"},
					{Name: "Versteht komplexe Aufforderungen"},
				},
				Risks: []Item{
					{Name: "Desorientierung", SubTags: OrientationTags},
					{Name: "Findet Zimmer nicht"},
					{Name: "Weglauftendenz / Hinlauftendenz"},
				},
				Findings: []Item{
					{Name: "Kommunikationsdefizit", SubTags: []string{"Versteht nur kurze Sätze", "Ja-Nein-Ebene", "Bedürfnisse äußern möglich", "Wortfindungsstörungen"}},
					{Name: "Herausforderndes Verhalten", SubTags: []string{"Nächtliche Unruhe", "Abwehr bei Pflegemaßnahmen", "Rufen/Schreien"}},
				},
				Measures: []Item{
					{Name: "Orientierungstraining", FrequencyOptions: GeneralFrequencies},
				},
				Aids: []Item{
					{Name: "Hörgerät", DetailOptions: CompetenceLevels, SubTags: SideTags},
					{Name: "Brille", DetailOptions: CompetenceLevels},
					{Name: "Kommunikations-App", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaMobility: {
		Title: "TF 2: Mobilität",
		Groups: []Group{
			{
				Title:   "Bewegung & Hilfsmittel",
				Gateway: &Gateway{Question: "Beweglichkeit eingeschränkt?", PosLabel: "Nein", NegLabel: "Ja"},
				Resources: []Item{
					{Name: "Sicherer Transfer"},
					{Name: "Geht sicher ohne Hilfsmittel"},
				},
				Risks: []Item{
					{Name: "Sturzgefahr", SubTags: []string{"Sturz i.d. letzten 6 Mon.", "Balancestörungen", "Angst zu stürzen"}},
					{Name: "Eingeschränkte Mobilität", SubTags: MobilityTags},
				},
				Findings: []Item{
					{Name: "Risiko-Indikator", SubTags: []string{"Rollator wird abgelehnt", "Rollator wird vergessen", "Hemiparese", "Tremor"}},
					{Name: "Gehfähigkeit", SubTags: []string{"Geht sicher", "Geht unsicher", "Geht schwankend"}},
				},
				Measures: []Item{
					{Name: "Transfer-Hilfe", DetailOptions: TransferDetails, FrequencyOptions: GeneralFrequencies},
				},
				Aids: []Item{
					{Name: "Rollator (wird genutzt)", DetailOptions: CompetenceLevels},
					{Name: "Rollstuhl (manuell)", DetailOptions: CompetenceLevels, SubTags: []string{"Aktiv fahrbar", "Wird geschoben"}},
					{Name: "E-Rollstuhl", DetailOptions: CompetenceLevels},
					{Name: "Gehstock", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaIllness: {
		Title: "TF 3: Krankheitsbezogene Anforderungen",
		Groups: []Group{
			{
				Title:   "Medikation & Symptome",
				Gateway: &Gateway{Question: "Hilfe bei Therapie?", PosLabel: "Nein", NegLabel: "Ja"},
				Resources: []Item{
					{Name: "Nimmt Medikamente selbstständig"},
				},
				Findings: []Item{
					{Name: "Belastende Symptome", SubTags: []string{"Chronische Schmerzen", "Akute Schmerzen", "Luftnot Ruhe", "Luftnot Belastung", "Schwindel", "Übelkeit"}},
					{Name: "Hautzustand", SubTags: []string{"Intakt", "Pergamenthaut", "Hämatomneigung", "Bestehende Wunde"}},
				},
				Measures: []Item{
					{Name: "Medikamentengabe", SubTags: []string{"Braucht Erinnerung (Anreichen)", "Muss verabreicht werden", "Schluckstörungen bei Tabletten"}},
					{Name: "Wundversorgung", FrequencyOptions: GeneralFrequencies, DateRelevant: true},
				},
				Aids: []Item{
					{Name: "Inhalationsgerät", DetailOptions: CompetenceLevels},
					{Name: "BZ-Messgerät", DetailOptions: CompetenceLevels},
					{Name: "CPAP-Maske", DetailOptions: CompetenceLevels},
					{Name: "Insulin-Pen", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaSelfCare: {
		Title: "TF 4: Selbstversorgung",
		Groups: []Group{
			{
				Title:   "Hygiene & Ernährung",
				Gateway: &Gateway{Question: "Hilfe bei SV?", PosLabel: "Nein", NegLabel: "Ja"},
				Resources: []Item{
					{Name: "Oberkörper selbstständig"},
					{Name: "Isst selbstständig"},
					{Name: "Trinkmenge ausreichend"},
				},
				Risks: []Item{
					{Name: "Inkontinenz (Risikofeld)", SubTags: []string{"Kontinent", "Harninkontinenz", "Stuhlinkontinenz", "Spürt Drang", "Nutzt Vorlage selbstständig", "Nutzt Vorlage NICHT selbstständig"}},
					{Name: "Ernährungsrisiko", SubTags: []string{"BMI niedrig", "Trinkmenge zu wenig", "Appetitlosigkeit"}},
				},
				Findings: []Item{
					{Name: "Körperpflege Bedarf", SubTags: []string{"Überwiegend selbstständig", "Anleitung/Impuls", "Teilübernahme", "Vollständige Übernahme"}},
					{Name: "Ernährung Hilfe", SubTags: []string{"Muss kleingeschnitten werden", "Muss angereicht werden"}},
				},
				Measures: []Item{
					{Name: "Ganzkörperwaschung", DetailOptions: WashDetails, FrequencyOptions: GeneralFrequencies},
				},
				Aids: []Item{
					{Name: "Duschstuhl", DetailOptions: CompetenceLevels},
					{Name: "Toilettensitzerhöhung", DetailOptions: CompetenceLevels},
					{Name: "Tellerranderhöhung", DetailOptions: CompetenceLevels},
					{Name: "Spezialbesteck / Trinkhilfe", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaSocial: {
		Title: "TF 5: Soziales & Schlaf",
		Groups: []Group{
			{
				Title:   "Tagesstruktur & Interaktion",
				Gateway: &Gateway{Question: "Probleme?", PosLabel: "Nein", NegLabel: "Ja"},
				Resources: []Item{
					{Name: "Sucht Kontakt"},
					{Name: "Feste Rituale (Mittagsschlaf/TV)"},
					{Name: "Nimmt aktiv an Gruppen teil"},
				},
				Findings: []Item{
					{Name: "Sozialverhalten", SubTags: []string{"Rückzugstendenz / Einzelgänger", "Sucht Kontakt", "Konfliktfreudig", "Regelmäßiger Besuch"}},
					{Name: "Tagesstruktur", SubTags: []string{"Nimmt aktiv teil", "Braucht Motivation/Abholung", "Nimmt passiv teil"}},
				},
				Measures: []Item{
					{Name: "Motivation / Begleitung", FrequencyOptions: GeneralFrequencies},
				},
				Aids: []Item{
					{Name: "Lichtwecker / Orientierungslicht", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaDischarge: {
		Title: "TF 6: Kurzzeitpflege & Entlassmanagement",
		Groups: []Group{
			{
				Title:   "Ziele der Kurzzeitpflege",
				Gateway: &Gateway{Question: "Individuelle Ziele definiert?", PosLabel: "Ja", NegLabel: "Nein"},
				Resources: []Item{
					{Name: "Hohe Eigenmotivation zur Reha"},
					{Name: "Rückkehrwille ausgeprägt"},
					{Name: "Stabile soziale Unterstützung"},
				},
				Risks: []Item{
					{Name: "Risiko: Heimverbleib droht", SubTags: []string{"Soziale Isolation", "Wohnung nicht barrierefrei", "Überlastung Angehörige"}},
					{Name: "Risiko: Re-Hospitalisierung", SubTags: []string{"Instabiler AZ", "Unzureichende Compliance"}},
				},
				Findings: []Item{
					{Name: "Hauptziel der Aufnahme", SubTags: TargetDetails},
					{Name: "Geplante Destination", SubTags: DestinationTags},
				},
				Measures: []Item{
					{Name: "Zielvereinbarungsgespräch", FrequencyOptions: GeneralFrequencies},
					{Name: "Aktivierende Reha-Pflege", FrequencyOptions: GeneralFrequencies},
				},
			},
			{
				Title:   "Entlassmanagement & Überleitung",
				Gateway: &Gateway{Question: "Entlassmanagement aktiv?", PosLabel: "Ja", NegLabel: "Nein"},
				Resources: []Item{
					{Name: "Hilfsmittel zu Hause vorhanden"},
					{Name: "Pflegedienst bereits involviert"},
				},
				Findings: []Item{
					{Name: "Überleitungs-Status", SubTags: []string{"Medikationsplan aktuell", "Entlassbericht liegt vor", "Arzttermine vereinbart", "Transportschein vorh."}},
					{Name: "Häusliche Barrieren", SubTags: []string{"Treppen ohne Lift", "Bad nicht barrierefrei", "Kein Telefon/Notruf"}},
				},
				Measures: []Item{
					{Name: "Hilfsmittel-Anforderung", FrequencyOptions: GeneralFrequencies},
					{Name: "Schulung der Angehörigen", FrequencyOptions: GeneralFrequencies},
					{Name: "Rezeptanforderung (Med/HM)", FrequencyOptions: GeneralFrequencies},
				},
				Aids: []Item{
					{Name: "Hausnotruf-System", DetailOptions: CompetenceLevels},
					{Name: "Pflegebett (Häuslich)", DetailOptions: CompetenceLevels},
				},
			},
		},
	},
	domain.AreaMatrix: {
		Title: "Risikomatrix",
		Groups: []Group{
			{
				Title: "Risiken",
				Risks: []Item{
					{Name: "Dekubitus"}, {Name: "Sturz"}, {Name: "Schmerz"},
					{Name: "Harninkontinenz"}, {Name: "Stuhlinkontinenz"},
					{Name: "Mangelernährung"}, {Name: "Exsikkose"}, {Name: "Aspiration"},
					{Name: "Kontraktur"}, {Name: "Thrombose"}, {Name: "Pneumonie"},
					{Name: "Intertrigo"}, {Name: "Eigengefährdung"},
					{Name: "Herausforderndes Verhalten"}, {Name: "Hinlauftendenz"},
					{Name: "Schlafstörung"}, {Name: "Soziale Isolation"},
					{Name: "Wundheilungsstörung"}, {Name: "Infektionsrisiko"},
				},
			},
		},
	},
}
