package mealdb

// MealSummary 以食材查詢時上游回傳的摘要資料
type MealSummary struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
}

// filterResponse 以食材查詢的回應；查無資料時 meals 為 null
type filterResponse struct {
	Meals []MealSummary `json:"meals"`
}

// MealDetail 以編號查詢時上游回傳的完整食譜資料
// 注意：食材與份量以 20 組固定編號欄位攜帶，不是陣列
type MealDetail struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Instructions string `json:"strInstructions"`
	Thumb        string `json:"strMealThumb"`
	Tags         string `json:"strTags"`
	Youtube      string `json:"strYoutube"`
	Source       string `json:"strSource"`

	Ingredient1  string `json:"strIngredient1"`
	Ingredient2  string `json:"strIngredient2"`
	Ingredient3  string `json:"strIngredient3"`
	Ingredient4  string `json:"strIngredient4"`
	Ingredient5  string `json:"strIngredient5"`
	Ingredient6  string `json:"strIngredient6"`
	Ingredient7  string `json:"strIngredient7"`
	Ingredient8  string `json:"strIngredient8"`
	Ingredient9  string `json:"strIngredient9"`
	Ingredient10 string `json:"strIngredient10"`
	Ingredient11 string `json:"strIngredient11"`
	Ingredient12 string `json:"strIngredient12"`
	Ingredient13 string `json:"strIngredient13"`
	Ingredient14 string `json:"strIngredient14"`
	Ingredient15 string `json:"strIngredient15"`
	Ingredient16 string `json:"strIngredient16"`
	Ingredient17 string `json:"strIngredient17"`
	Ingredient18 string `json:"strIngredient18"`
	Ingredient19 string `json:"strIngredient19"`
	Ingredient20 string `json:"strIngredient20"`

	Measure1  string `json:"strMeasure1"`
	Measure2  string `json:"strMeasure2"`
	Measure3  string `json:"strMeasure3"`
	Measure4  string `json:"strMeasure4"`
	Measure5  string `json:"strMeasure5"`
	Measure6  string `json:"strMeasure6"`
	Measure7  string `json:"strMeasure7"`
	Measure8  string `json:"strMeasure8"`
	Measure9  string `json:"strMeasure9"`
	Measure10 string `json:"strMeasure10"`
	Measure11 string `json:"strMeasure11"`
	Measure12 string `json:"strMeasure12"`
	Measure13 string `json:"strMeasure13"`
	Measure14 string `json:"strMeasure14"`
	Measure15 string `json:"strMeasure15"`
	Measure16 string `json:"strMeasure16"`
	Measure17 string `json:"strMeasure17"`
	Measure18 string `json:"strMeasure18"`
	Measure19 string `json:"strMeasure19"`
	Measure20 string `json:"strMeasure20"`
}

// lookupResponse 以編號查詢的回應；最多一筆，查無資料時 meals 為 null
type lookupResponse struct {
	Meals []MealDetail `json:"meals"`
}

// IngredientSlot 一組編號欄位（食材名稱、份量）
type IngredientSlot struct {
	Name    string
	Measure string
}

// Slots 依欄位編號 1 到 20 的順序展開所有食材欄位
// 明確逐欄對應，不使用反射，保留上游編號順序語意
func (d *MealDetail) Slots() [20]IngredientSlot {
	return [20]IngredientSlot{
		{d.Ingredient1, d.Measure1},
		{d.Ingredient2, d.Measure2},
		{d.Ingredient3, d.Measure3},
		{d.Ingredient4, d.Measure4},
		{d.Ingredient5, d.Measure5},
		{d.Ingredient6, d.Measure6},
		{d.Ingredient7, d.Measure7},
		{d.Ingredient8, d.Measure8},
		{d.Ingredient9, d.Measure9},
		{d.Ingredient10, d.Measure10},
		{d.Ingredient11, d.Measure11},
		{d.Ingredient12, d.Measure12},
		{d.Ingredient13, d.Measure13},
		{d.Ingredient14, d.Measure14},
		{d.Ingredient15, d.Measure15},
		{d.Ingredient16, d.Measure16},
		{d.Ingredient17, d.Measure17},
		{d.Ingredient18, d.Measure18},
		{d.Ingredient19, d.Measure19},
		{d.Ingredient20, d.Measure20},
	}
}
