package extract

import (
	"testing"
	"time"

	"github.com/quillback/scanledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNormalize_AllFieldsPresent(t *testing.T) {
	guess := StructuredGuess{
		StoreName: strPtr("Trader Joe's"),
		Date:      strPtr("05/10/2024"),
		Total:     floatPtr(11.31),
		Items: []GuessItem{
			{Name: "Bananas", Price: 1.99},
			{Name: "Almond Milk", Price: 3.49},
		},
	}

	got := NewAdapter(WithNow(fixedNow)).Normalize(guess)

	assert.Equal(t, "Trader Joe's", got.StoreName)
	assert.True(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC).Equal(got.Date))
	assert.InDelta(t, 11.31, got.Total, 1e-9)
	require.Len(t, got.Items, 2)
	assert.Equal(t, model.LineItem{Name: "Bananas", Price: 1.99, Quantity: 1}, got.Items[0])
}

func TestNormalize_MissingFieldsDefault(t *testing.T) {
	got := NewAdapter(WithNow(fixedNow)).Normalize(StructuredGuess{})

	assert.Equal(t, "Unknown Store", got.StoreName)
	assert.True(t, fixedNow().Equal(got.Date))
	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestNormalize_DateSanityWindow(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantKept bool
	}{
		{name: "three weeks in the past kept", date: "05/25/2024", wantKept: true},
		{name: "three years in the past substituted", date: "06/15/2021", wantKept: false},
		{name: "just inside two year lookback kept", date: "06/16/2022", wantKept: true},
		{name: "two weeks in the future kept", date: "06/29/2024", wantKept: true},
		{name: "two months in the future substituted", date: "08/15/2024", wantKept: false},
		{name: "unparseable substituted", date: "2024-05-10", wantKept: false},
	}

	adapter := NewAdapter(WithNow(fixedNow))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.Normalize(StructuredGuess{Date: strPtr(tt.date)})
			if tt.wantKept {
				assert.False(t, fixedNow().Equal(got.Date), "date should have been kept")
			} else {
				assert.True(t, fixedNow().Equal(got.Date), "date should have been substituted")
			}
		})
	}
}

func TestNormalize_SkipsMalformedItems(t *testing.T) {
	guess := StructuredGuess{
		Items: []GuessItem{
			{Name: "  ", Price: 1.00},
			{Name: "Refund", Price: -5.00},
			{Name: "Bananas", Price: 1.99},
		},
	}

	got := NewAdapter(WithNow(fixedNow)).Normalize(guess)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Bananas", got.Items[0].Name)
}

func TestNormalize_NegativeTotalDefaultsToZero(t *testing.T) {
	got := NewAdapter(WithNow(fixedNow)).Normalize(StructuredGuess{Total: floatPtr(-3.00)})
	assert.Zero(t, got.Total)
}

func TestNormalizeJSON(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := []byte(`{"store_name":"Corner Bakery","date":"05/10/2024","total":7.25,"items":[{"name":"Croissant","price":3.75}]}`)
		got := NewAdapter(WithNow(fixedNow)).NormalizeJSON(payload)

		assert.Equal(t, "Corner Bakery", got.StoreName)
		assert.InDelta(t, 7.25, got.Total, 1e-9)
		require.Len(t, got.Items, 1)
	})

	t.Run("garbage degrades to defaults", func(t *testing.T) {
		got := NewAdapter(WithNow(fixedNow)).NormalizeJSON([]byte(`not json at all`))

		assert.Equal(t, "Unknown Store", got.StoreName)
		assert.True(t, fixedNow().Equal(got.Date))
		assert.Empty(t, got.Items)
		assert.Zero(t, got.Total)
	})

	t.Run("null fields degrade to defaults", func(t *testing.T) {
		got := NewAdapter(WithNow(fixedNow)).NormalizeJSON([]byte(`{"store_name":null,"date":null,"items":null,"total":null}`))
		assert.Equal(t, "Unknown Store", got.StoreName)
	})
}
