package meal

import (
	"testing"

	"meal-finder/internal/core/mealdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIngredientsSparseSlots(t *testing.T) {
	// 只填欄位 1、3、5，其餘留空
	detail := newRecipeDetail(&mealdb.MealDetail{
		ID:          "1",
		Ingredient1: "Chicken",
		Measure1:    "1 whole",
		Ingredient3: "Garlic",
		Measure3:    "2 cloves",
		Ingredient5: "Salt",
	})

	lines := ExtractIngredients(detail)

	require.Len(t, lines, 3)
	// 輸出順序即欄位編號順序
	assert.Equal(t, IngredientLine{Name: "Chicken", Measure: "1 whole"}, lines[0])
	assert.Equal(t, IngredientLine{Name: "Garlic", Measure: "2 cloves"}, lines[1])
	// 份量未填時補為空字串
	assert.Equal(t, IngredientLine{Name: "Salt", Measure: ""}, lines[2])
}

func TestExtractIngredientsSkipsBlankNames(t *testing.T) {
	detail := newRecipeDetail(&mealdb.MealDetail{
		Ingredient1: "   ",
		Measure1:    "1 tsp",
		Ingredient2: "\t",
		Ingredient3: " Pepper ",
	})

	lines := ExtractIngredients(detail)

	require.Len(t, lines, 1)
	assert.Equal(t, "Pepper", lines[0].Name)
}

func TestExtractIngredientsAllTwentySlots(t *testing.T) {
	raw := &mealdb.MealDetail{
		Ingredient1: "i1", Ingredient2: "i2", Ingredient3: "i3", Ingredient4: "i4", Ingredient5: "i5",
		Ingredient6: "i6", Ingredient7: "i7", Ingredient8: "i8", Ingredient9: "i9", Ingredient10: "i10",
		Ingredient11: "i11", Ingredient12: "i12", Ingredient13: "i13", Ingredient14: "i14", Ingredient15: "i15",
		Ingredient16: "i16", Ingredient17: "i17", Ingredient18: "i18", Ingredient19: "i19", Ingredient20: "i20",
	}

	lines := ExtractIngredients(newRecipeDetail(raw))

	require.Len(t, lines, 20)
	assert.Equal(t, "i1", lines[0].Name)
	assert.Equal(t, "i20", lines[19].Name)
}

func TestFormatInstructions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"空字串", "", nil},
		{"只有空白行", "\n  \n\t\n", nil},
		{"單行", "Mix everything.", []string{"Mix everything."}},
		{
			"空白行與行尾空白",
			"Step one.\n\nStep two.\n  ",
			[]string{"Step one.", "Step two."},
		},
		{
			"CRLF 換行",
			"Step one.\r\nStep two.\r\n",
			[]string{"Step one.", "Step two."},
		},
		{
			"保留行序",
			"Boil water.\nAdd rice.\nSimmer.",
			[]string{"Boil water.", "Add rice.", "Simmer."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInstructions(tt.text))
		})
	}
}
