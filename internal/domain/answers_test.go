package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModuleAnswers(t *testing.T) {
	a := NewModuleAnswers()
	assert.Len(t, a.M1, Module1Len)
	assert.Len(t, a.M2, Module2Len)
	assert.Len(t, a.M3, Module3Len)
	assert.Len(t, a.M4, Module4Len)
	assert.Len(t, a.M6, Module6Len)
	assert.Equal(t, 0, a.M5)
	for _, v := range a.M2 {
		assert.Equal(t, Unanswered, v)
	}
}

func TestSumAnswered(t *testing.T) {
	assert.Equal(t, 0, SumAnswered([]int{-1, -1, -1}))
	assert.Equal(t, 5, SumAnswered([]int{2, -1, 3}))
	assert.Equal(t, 0, SumAnswered(nil))
}

func TestModuleAnswers_ApplyPatch(t *testing.T) {
	a := NewModuleAnswers()
	a.Set(1, 0, 3)

	m5 := 7
	a.Apply(ModuleAnswersPatch{
		M2: []int{1, 2, 3},
		M5: &m5,
	})

	assert.Equal(t, 3, a.M1[0], "untouched module keeps existing answers")
	require.Len(t, a.M2, Module2Len, "short patch rows are padded back to module length")
	assert.Equal(t, []int{1, 2, 3}, a.M2[:3])
	assert.Equal(t, Unanswered, a.M2[3])
	assert.Equal(t, 7, a.M5)
}

func TestModuleAnswers_NormalizeClampsM5(t *testing.T) {
	a := NewModuleAnswers()
	a.M5 = 99
	a.Normalize()
	assert.Equal(t, M5Max, a.M5)

	a.M5 = -3
	a.Normalize()
	assert.Equal(t, 0, a.M5)
}

func TestModuleAnswersPatch_Empty(t *testing.T) {
	assert.True(t, ModuleAnswersPatch{}.Empty())
	m5 := 0
	assert.False(t, ModuleAnswersPatch{M5: &m5}.Empty())
	assert.False(t, ModuleAnswersPatch{M1: []int{}}.Empty())
}
