// Package grading implements the NBA care-grade calculation: per-module raw
// point sums are mapped through fixed severity breakpoints onto weighted
// points, the cognition and behaviour modules combine by maximum, and the
// weighted total is mapped onto care grades 0-5.
package grading

import "github.com/sis-intake-server/internal/domain"

// Result is the full outcome of one grading run.
type Result struct {
	RawM1 int `json:"rawM1"`
	RawM2 int `json:"rawM2"`
	RawM3 int `json:"rawM3"`
	RawM4 int `json:"rawM4"`
	RawM5 int `json:"rawM5"`
	RawM6 int `json:"rawM6"`

	WeightedM1   float64 `json:"weightedM1"`
	WeightedM2M3 float64 `json:"weightedM2M3"`
	WeightedM4   float64 `json:"weightedM4"`
	WeightedM5   float64 `json:"weightedM5"`
	WeightedM6   float64 `json:"weightedM6"`

	Total float64          `json:"total"`
	Grade domain.CareGrade `json:"grade"`
}

// LogFields returns structured logging fields for the grading audit trail.
func (r Result) LogFields() map[string]any {
	return map[string]any{
		"raw_m1":   r.RawM1,
		"raw_m2":   r.RawM2,
		"raw_m3":   r.RawM3,
		"raw_m4":   r.RawM4,
		"raw_m5":   r.RawM5,
		"raw_m6":   r.RawM6,
		"total":    r.Total,
		"grade":    int(r.Grade),
		"is_valid": r.Grade.IsValid(),
	}
}

// WeightMobility maps the mobility raw sum to weighted points (10% module).
func WeightMobility(sum int) float64 {
	switch {
	case sum <= 1:
		return 0
	case sum <= 3:
		return 2.5
	case sum <= 5:
		return 5
	case sum <= 9:
		return 7.5
	default:
		return 10
	}
}

// WeightCognitionBehaviour maps the cognition and behaviour raw sums to a
// single weighted score (15% module): each is weighted on its own scale and
// only the higher of the two counts.
func WeightCognitionBehaviour(sumCognition, sumBehaviour int) float64 {
	var wc float64
	switch {
	case sumCognition <= 1:
		wc = 0
	case sumCognition <= 5:
		wc = 3.75
	case sumCognition <= 10:
		wc = 7.5
	case sumCognition <= 16:
		wc = 11.25
	default:
		wc = 15
	}

	var wb float64
	switch {
	case sumBehaviour == 0:
		wb = 0
	case sumBehaviour <= 2:
		wb = 3.75
	case sumBehaviour <= 4:
		wb = 7.5
	case sumBehaviour <= 6:
		wb = 11.25
	default:
		wb = 15
	}

	if wb > wc {
		return wb
	}
	return wc
}

// WeightSelfCare maps the self-care raw sum to weighted points (40% module).
func WeightSelfCare(sum int) float64 {
	switch {
	case sum <= 2:
		return 0
	case sum <= 7:
		return 10
	case sum <= 18:
		return 20
	case sum <= 36:
		return 30
	default:
		return 40
	}
}

// WeightTherapy maps the therapy-demand raw points to weighted points (20%
// module). Unlike the other modules this takes a scalar raw value, not an
// answer-row sum.
func WeightTherapy(rawPoints int) float64 {
	switch {
	case rawPoints < 1:
		return 0
	case rawPoints < 4:
		return 5
	case rawPoints < 9:
		return 10
	case rawPoints < 13:
		return 15
	default:
		return 20
	}
}

// WeightDailyLife maps the daily-life raw sum to weighted points (15% module).
func WeightDailyLife(sum int) float64 {
	switch {
	case sum == 0:
		return 0
	case sum <= 3:
		return 3.75
	case sum <= 6:
		return 7.5
	case sum <= 11:
		return 11.25
	default:
		return 15
	}
}

// GradeForTotal maps a weighted total onto a care grade.
func GradeForTotal(total float64) domain.CareGrade {
	switch {
	case total < 12.5:
		return 0
	case total < 27:
		return 1
	case total < 47.5:
		return 2
	case total < 70:
		return 3
	case total < 90:
		return 4
	default:
		return 5
	}
}

// Grade runs the full calculation over an answer set. Unanswered entries
// contribute nothing, so a partially answered assessment yields the grade the
// answered portion supports.
func Grade(a domain.ModuleAnswers) Result {
	r := Result{
		RawM1: domain.SumAnswered(a.M1),
		RawM2: domain.SumAnswered(a.M2),
		RawM3: domain.SumAnswered(a.M3),
		RawM4: domain.SumAnswered(a.M4),
		RawM5: a.M5,
		RawM6: domain.SumAnswered(a.M6),
	}
	r.WeightedM1 = WeightMobility(r.RawM1)
	r.WeightedM2M3 = WeightCognitionBehaviour(r.RawM2, r.RawM3)
	r.WeightedM4 = WeightSelfCare(r.RawM4)
	r.WeightedM5 = WeightTherapy(r.RawM5)
	r.WeightedM6 = WeightDailyLife(r.RawM6)
	r.Total = r.WeightedM1 + r.WeightedM2M3 + r.WeightedM4 + r.WeightedM5 + r.WeightedM6
	r.Grade = GradeForTotal(r.Total)
	return r
}
