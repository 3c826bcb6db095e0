package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"results_feed/internal/model"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		roll int
		want model.Category
	}{
		{0, model.CategoryWhite},
		{1, model.CategoryRed},
		{7, model.CategoryRed},
		{8, model.CategoryBlack},
		{14, model.CategoryBlack},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, model.Classify(tc.roll), "roll %d", tc.roll)
	}
}

func TestClassify_OutOfRangeFallsToBlack(t *testing.T) {
	assert.Equal(t, model.CategoryBlack, model.Classify(15))
	assert.Equal(t, model.CategoryBlack, model.Classify(1000))
	assert.Equal(t, model.CategoryBlack, model.Classify(-1))
}

// TestClassify_Total_Property verifies every roll in the domain maps to exactly one known category.
func TestClassify_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(model.MinRoll, model.MaxRoll).Draw(rt, "roll")
		got := model.Classify(roll)
		assert.Contains(rt, []model.Category{model.CategoryWhite, model.CategoryRed, model.CategoryBlack}, got)

		switch {
		case roll == 0:
			assert.Equal(rt, model.CategoryWhite, got)
		case roll <= 7:
			assert.Equal(rt, model.CategoryRed, got)
		default:
			assert.Equal(rt, model.CategoryBlack, got)
		}
	})
}

func TestOutcome_CategoryDerivedFromRoll(t *testing.T) {
	o := model.Outcome{ID: "a", RollValue: 0, ObservedAt: time.Now(), Provenance: model.ProvenanceRemote}
	assert.Equal(t, model.CategoryWhite, o.Category())
	assert.False(t, o.Synthetic())

	o.RollValue = 9
	o.Provenance = model.ProvenanceSynthetic
	assert.Equal(t, model.CategoryBlack, o.Category())
	assert.True(t, o.Synthetic())
}
