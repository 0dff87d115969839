package catalog

import "github.com/sis-intake-server/internal/domain"

// BenefitSchedule lists the monthly and one-off entitlement amounts in euros
// for one care grade (2017+ amounts).
type BenefitSchedule struct {
	Title           string `json:"title,omitempty"`
	CareAllowance   int    `json:"careAllowance"`   // Pflegegeld
	CareInKind      int    `json:"careInKind"`      // Sachleistung
	DayCare         int    `json:"dayCare"`         // Tagespflege
	Residential     int    `json:"residential"`     // Zuschuss vollstationär
	Relief          int    `json:"relief"`          // Entlastungsbetrag
	Aids            int    `json:"aids"`            // Pflegehilfsmittel
	HomeAdaptation  int    `json:"homeAdaptation"`  // Wohnumfeldverbesserung
	ShortTermCare   int    `json:"shortTermCare"`   // Kurzzeitpflege
	RespiteCare     int    `json:"respiteCare"`     // Verhinderungspflege
	GroupSupplement int    `json:"groupSupplement"` // Wohngruppenzuschlag
}

var benefitSchedules = map[domain.CareGrade]BenefitSchedule{
	0: {},
	1: {
		Title:           "Geringe Beeinträchtigung der Selbstständigkeit",
		Residential:     125,
		Relief:          125,
		Aids:            40,
		HomeAdaptation:  4000,
		GroupSupplement: 214,
	},
	2: {
		Title:           "Erhebliche Beeinträchtigung der Selbstständigkeit",
		CareAllowance:   316,
		CareInKind:      689,
		DayCare:         689,
		Residential:     770,
		Relief:          125,
		Aids:            40,
		HomeAdaptation:  4000,
		ShortTermCare:   1612,
		RespiteCare:     1612,
		GroupSupplement: 214,
	},
	3: {
		Title:           "Schwere Beeinträchtigung der Selbstständigkeit",
		CareAllowance:   545,
		CareInKind:      1298,
		DayCare:         1298,
		Residential:     1262,
		Relief:          125,
		Aids:            40,
		HomeAdaptation:  4000,
		ShortTermCare:   1612,
		RespiteCare:     1612,
		GroupSupplement: 214,
	},
	4: {
		Title:           "Schwerste Beeinträchtigung der Selbstständigkeit",
		CareAllowance:   728,
		CareInKind:      1612,
		DayCare:         1612,
		Residential:     1775,
		Relief:          125,
		Aids:            40,
		HomeAdaptation:  4000,
		ShortTermCare:   1612,
		RespiteCare:     1612,
		GroupSupplement: 214,
	},
	5: {
		Title:           "Schwerste Beeinträchtigung mit besonderen Anforderungen",
		CareAllowance:   901,
		CareInKind:      1995,
		DayCare:         1995,
		Residential:     2005,
		Relief:          125,
		Aids:            40,
		HomeAdaptation:  4000,
		ShortTermCare:   1612,
		RespiteCare:     1612,
		GroupSupplement: 214,
	},
}

// Benefits returns the schedule for a grade. Out-of-range grades fall back to
// the grade 0 schedule.
func Benefits(grade domain.CareGrade) BenefitSchedule {
	if s, ok := benefitSchedules[grade]; ok {
		return s
	}
	return benefitSchedules[0]
}
