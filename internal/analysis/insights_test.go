package analysis

import (
	"testing"
	"time"

	"github.com/quillback/scanledger/internal/common"
	"github.com/quillback/scanledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsights(t *testing.T) {
	receipts := []model.Receipt{
		receipt(day(2024, 6, 1), model.CategoryGroceries, 300.00),
		receipt(day(2024, 6, 5), model.CategoryDining, 120.00),
		receipt(day(2024, 6, 10), model.CategoryDining, 80.00),
		// Prior period baseline for anomaly detection.
		receipt(day(2024, 5, 10), model.CategoryDining, 50.00),
		receipt(day(2024, 5, 12), model.CategoryGroceries, 280.00),
	}
	budgets := []model.Budget{
		{Category: model.CategoryDining, Month: day(2024, 6, 1), MonthlyLimit: 150.00},
	}

	agg := New(WithNow(fixedNow))
	insights, err := agg.BuildInsights(receipts, budgets, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)

	require.Len(t, insights.TopCategories, 2)
	assert.Equal(t, model.CategoryGroceries, insights.TopCategories[0].Category)
	assert.InDelta(t, 300.00, insights.TopCategories[0].Total, 1e-9)
	assert.InDelta(t, 60.00, insights.TopCategories[0].Percentage, 1e-9)
	assert.Equal(t, model.CategoryDining, insights.TopCategories[1].Category)

	// Dining spending rose 300% over the prior period, past the 50% bar.
	require.Len(t, insights.Insights, 1)
	assert.Contains(t, insights.Insights[0], "Dining")

	// Dining is over its 150 budget by 50.
	require.Len(t, insights.Recommendations, 1)
	assert.Contains(t, insights.Recommendations[0], "Dining")
	assert.Contains(t, insights.Recommendations[0], "over budget")

	assert.Greater(t, insights.Prediction, 0.0)
	assert.NotEmpty(t, insights.PredictionBasis)
	assert.NotEmpty(t, insights.Summary)
}

func TestBuildInsights_EmptyCollection(t *testing.T) {
	agg := New(WithNow(fixedNow))
	insights, err := agg.BuildInsights(nil, nil, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)

	assert.Empty(t, insights.TopCategories)
	assert.Empty(t, insights.Insights)
	assert.Empty(t, insights.Recommendations)
	assert.Zero(t, insights.Prediction)
	assert.Equal(t, "no spending recorded in the last three months", insights.PredictionBasis)
}

func TestBuildInsights_InvalidPeriod(t *testing.T) {
	agg := New(WithNow(fixedNow))
	_, err := agg.BuildInsights(nil, nil, day(2024, 6, 30), day(2024, 6, 1))
	assert.ErrorIs(t, err, common.ErrInvalidPeriod)
}

func TestBuildInsights_InvalidBudgetSurfaces(t *testing.T) {
	budgets := []model.Budget{
		{Category: model.CategoryDining, Month: day(2024, 6, 1), MonthlyLimit: -1},
	}

	agg := New(WithNow(fixedNow))
	_, err := agg.BuildInsights(nil, budgets, day(2024, 6, 1), day(2024, 6, 30))
	assert.ErrorIs(t, err, common.ErrNegativeLimit)
}

func TestRankCategories_TiesBreakOnDisplayOrder(t *testing.T) {
	totals := map[model.Category]float64{
		model.CategoryHealth:    50.00,
		model.CategoryGroceries: 50.00,
	}

	ranked := RankCategories(totals, 100.00)

	require.Len(t, ranked, 2)
	assert.Equal(t, model.CategoryGroceries, ranked[0].Category)
	assert.Equal(t, model.CategoryHealth, ranked[1].Category)
	assert.InDelta(t, 50.00, ranked[0].Percentage, 1e-9)
}

func TestBuildInsights_DeterministicAcrossCalls(t *testing.T) {
	receipts := []model.Receipt{
		receipt(day(2024, 6, 1), model.CategoryGroceries, 300.00),
		receipt(day(2024, 6, 5), model.CategoryDining, 120.00),
	}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	agg := New(WithNow(func() time.Time { return now }))
	first, err := agg.BuildInsights(receipts, nil, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)
	second, err := agg.BuildInsights(receipts, nil, day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
