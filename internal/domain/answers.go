package domain

// Fixed question counts of the six NBA modules. Module 5 is a single scalar
// in [0, M5Max], not a sum of sub-items.
const (
	Module1Len = 5  // Mobilität
	Module2Len = 11 // Kognitive und kommunikative Fähigkeiten
	Module3Len = 13 // Verhaltensweisen und psychische Problemlagen
	Module4Len = 13 // Selbstversorgung
	Module6Len = 6  // Gestaltung des Alltagslebens
	M5Max      = 15
)

// Unanswered is the sentinel for a question that has not been rated yet. It
// contributes zero to any raw sum.
const Unanswered = -1

// ModuleAnswers holds the severity codes of the six-module NBA questionnaire.
// The structure is never partially validated: an incomplete set of answers
// still grades, it just understates the score.
type ModuleAnswers struct {
	M1 []int `json:"m1"`
	M2 []int `json:"m2"`
	M3 []int `json:"m3"`
	M4 []int `json:"m4"`
	M5 int   `json:"m5"`
	M6 []int `json:"m6"`
}

// NewModuleAnswers returns a structure with every position unanswered.
func NewModuleAnswers() ModuleAnswers {
	return ModuleAnswers{
		M1: unansweredRow(Module1Len),
		M2: unansweredRow(Module2Len),
		M3: unansweredRow(Module3Len),
		M4: unansweredRow(Module4Len),
		M5: 0,
		M6: unansweredRow(Module6Len),
	}
}

func unansweredRow(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = Unanswered
	}
	return row
}

// SumAnswered sums a module row treating the Unanswered sentinel as zero.
func SumAnswered(row []int) int {
	sum := 0
	for _, v := range row {
		if v == Unanswered {
			continue
		}
		sum += v
	}
	return sum
}

// Set writes one answer position. Out-of-range positions are ignored; the
// answer structure never rejects input, range discipline lives at the input
// boundary.
func (a *ModuleAnswers) Set(module, index, value int) {
	row := a.row(module)
	if module == 5 {
		a.M5 = value
		return
	}
	if row == nil || index < 0 || index >= len(row) {
		return
	}
	row[index] = value
}

func (a *ModuleAnswers) row(module int) []int {
	switch module {
	case 1:
		return a.M1
	case 2:
		return a.M2
	case 3:
		return a.M3
	case 4:
		return a.M4
	case 6:
		return a.M6
	default:
		return nil
	}
}

// Normalize forces every row back to its fixed length, padding missing
// positions with the Unanswered sentinel and truncating surplus ones. Used
// after merging externally supplied answers.
func (a *ModuleAnswers) Normalize() {
	a.M1 = normalizeRow(a.M1, Module1Len)
	a.M2 = normalizeRow(a.M2, Module2Len)
	a.M3 = normalizeRow(a.M3, Module3Len)
	a.M4 = normalizeRow(a.M4, Module4Len)
	a.M6 = normalizeRow(a.M6, Module6Len)
	if a.M5 < 0 {
		a.M5 = 0
	}
	if a.M5 > M5Max {
		a.M5 = M5Max
	}
}

func normalizeRow(row []int, want int) []int {
	out := unansweredRow(want)
	copy(out, row)
	return out
}

// ModuleAnswersPatch is a partial six-module answer object, as delivered by
// the structured-fill interface. Absent fields stay nil and are not merged.
type ModuleAnswersPatch struct {
	M1 []int `json:"m1,omitempty"`
	M2 []int `json:"m2,omitempty"`
	M3 []int `json:"m3,omitempty"`
	M4 []int `json:"m4,omitempty"`
	M5 *int  `json:"m5,omitempty"`
	M6 []int `json:"m6,omitempty"`
}

// Apply merges the fields present in the patch, leaving absent fields
// untouched, then normalizes the result back to the fixed module shapes.
func (a *ModuleAnswers) Apply(p ModuleAnswersPatch) {
	if p.M1 != nil {
		a.M1 = append([]int(nil), p.M1...)
	}
	if p.M2 != nil {
		a.M2 = append([]int(nil), p.M2...)
	}
	if p.M3 != nil {
		a.M3 = append([]int(nil), p.M3...)
	}
	if p.M4 != nil {
		a.M4 = append([]int(nil), p.M4...)
	}
	if p.M5 != nil {
		a.M5 = *p.M5
	}
	if p.M6 != nil {
		a.M6 = append([]int(nil), p.M6...)
	}
	a.Normalize()
}

// Empty reports whether the patch carries no fields at all.
func (p ModuleAnswersPatch) Empty() bool {
	return p.M1 == nil && p.M2 == nil && p.M3 == nil && p.M4 == nil && p.M5 == nil && p.M6 == nil
}
