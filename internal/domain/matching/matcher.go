// Package matching сопоставляет строки листов с распознанным на схеме текстом.
package matching

// Match разбивает строки листа на найденные на изображении и ненайденные.
//
// Сопоставление идет по точному совпадению MatchText с текстом распознавания,
// без нормализации регистра и пробелов. При повторяющемся тексте используется
// первое вхождение. Порядок строк сохраняется в обоих списках.
func Match(items []SpreadsheetItem, detection *DetectionResult) MatchResult {
	if len(items) == 0 {
		return MatchResult{Matched: []MatchedItem{}, Unmatched: []SpreadsheetItem{}}
	}

	if detection == nil || len(detection.Items) == 0 {
		unmatched := make([]SpreadsheetItem, len(items))
		copy(unmatched, items)
		return MatchResult{Matched: []MatchedItem{}, Unmatched: unmatched}
	}

	lookup := make(map[string]DetectedTextItem, len(detection.Items))
	for _, detected := range detection.Items {
		if detected.Text == "" {
			continue
		}
		if _, exists := lookup[detected.Text]; !exists {
			lookup[detected.Text] = detected
		}
	}

	result := MatchResult{
		Matched:   make([]MatchedItem, 0, len(items)),
		Unmatched: make([]SpreadsheetItem, 0),
	}

	for _, item := range items {
		if item.MatchText == "" {
			result.Unmatched = append(result.Unmatched, item)
			continue
		}

		detected, ok := lookup[item.MatchText]
		if !ok {
			result.Unmatched = append(result.Unmatched, item)
			continue
		}

		result.Matched = append(result.Matched, MatchedItem{
			ItemID:      item.ItemID,
			ItemName:    item.ItemName,
			IsMandatory: item.IsMandatory,
			MatchText:   item.MatchText,
			BoundingBox: detected.BoundingBox,
			Confidence:  detected.Confidence,
		})
	}

	return result
}
