package meal

import "strings"

// ExtractIngredients 將 20 組編號食材欄位正規化為食材清單
// 依欄位編號 1 到 20 遞增走訪，名稱去除空白後為空的欄位捨棄，
// 份量未填時補為空字串；輸出順序即欄位編號順序
func ExtractIngredients(detail *RecipeDetail) []IngredientLine {
	var lines []IngredientLine
	for _, slot := range detail.Slots {
		name := strings.TrimSpace(slot.Name)
		if name == "" {
			continue
		}
		lines = append(lines, IngredientLine{
			Name:    name,
			Measure: strings.TrimSpace(slot.Measure),
		})
	}
	return lines
}

// FormatInstructions 將自由文字的作法欄位拆成逐行步驟
// 依換行拆分，每行去除前後空白，空白行捨棄，行序保持不變（烹飪順序）
func FormatInstructions(text string) []string {
	if text == "" {
		return nil
	}

	var steps []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}
