package wizard

import (
	"fmt"
	"math"
)

// Типы компонентов по имени листа
const (
	ComponentPID        = "P&ID Component"
	ComponentInstrument = "Instrument"
	ComponentLine       = "Line / Pipe"
	ComponentEquipment  = "Equipment"
	ComponentGeneric    = "Component"
)

var componentTypes = map[string]string{
	"P&ID":            ComponentPID,
	"Instrument List": ComponentInstrument,
	"Line List":       ComponentLine,
	"Equipment List":  ComponentEquipment,
}

// Справочные значения характеристик, выбираются по хешу id позиции
var (
	instrumentRanges  = []string{"0-100 PSI", "0-500°F", "0-10 m", "4-20 mA", "0-300 PSI"}
	instrumentClasses = []string{"Class A", "Class B", "Class C"}

	lineSizes     = []string{`2"`, `3"`, `4"`, `6"`, `8"`}
	lineMaterials = []string{"CS A106 Gr.B", "SS 304L", "SS 316L", "CS A53 Gr.B"}
	lineSchedules = []string{"Sch 40", "Sch 80", "Sch 160", "Sch STD"}

	equipmentRatings   = []string{"150#", "300#", "600#"}
	equipmentMaterials = []string{"SA-516 Gr.70", "SA-240 304", "SA-387 Gr.11"}

	pidSizes   = []string{`2"`, `4"`, `6"`, `8"`, `10"`}
	pidRatings = []string{"150#", "300#", "600#"}
)

// SpecRow строка характеристик
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AnalysisMetric столбец диаграммы анализа, значение 0..100
type AnalysisMetric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ItemDetail карточка подсвеченной позиции
type ItemDetail struct {
	ItemID          string           `json:"itemId"`
	Name            string           `json:"name"`
	ComponentType   string           `json:"componentType"`
	Status          string           `json:"status"`
	TagRef          string           `json:"tagRef"`
	SheetName       string           `json:"sheetName"`
	Location        string           `json:"location"`
	ConfidenceText  string           `json:"confidenceText"`
	ConfidenceClass string           `json:"confidenceClass"`
	ConfidencePct   int              `json:"confidencePct"`
	Specs           []SpecRow        `json:"specs"`
	Metrics         []AnalysisMetric `json:"metrics"`
}

// NewItemDetail строит карточку позиции. Характеристики и метрики детерминированы по id.
func NewItemDetail(item SelectionItem) ItemDetail {
	componentType, ok := componentTypes[item.SheetName]
	if !ok {
		componentType = ComponentGeneric
	}
	hash := idHash(item.ID)

	d := ItemDetail{
		ItemID:          item.ID,
		Name:            item.Text,
		ComponentType:   componentType,
		Status:          itemStatus(item),
		TagRef:          item.MatchText,
		SheetName:       item.SheetName,
		Location:        "Not detected",
		ConfidenceText:  "N/A",
		ConfidenceClass: confidenceClass(item.Confidence),
		ConfidencePct:   min(max(roundInt(item.Confidence), 0), 100),
		Specs:           componentSpecs(componentType, hash),
		Metrics:         analysisMetrics(item, hash),
	}
	if d.TagRef == "" {
		d.TagRef = "-"
	}
	if item.Confidence > 0 {
		d.ConfidenceText = fmt.Sprintf("%d%%", roundInt(item.Confidence))
	}
	if item.BoundingBox.X != 0 || item.BoundingBox.Y != 0 {
		d.Location = fmt.Sprintf("X: %.1f%%  Y: %.1f%%", item.BoundingBox.X*100, item.BoundingBox.Y*100)
	}
	return d
}

func itemStatus(item SelectionItem) string {
	switch {
	case item.IsMandatory:
		return "Mandatory"
	case item.IsSelected:
		return "Selected"
	default:
		return "Optional"
	}
}

func confidenceClass(confidence float64) string {
	switch {
	case confidence >= 90:
		return "high"
	case confidence >= 70:
		return "medium"
	default:
		return "low"
	}
}

func componentSpecs(componentType string, hash int) []SpecRow {
	switch componentType {
	case ComponentInstrument:
		signal := "HART"
		if hash%2 == 0 {
			signal = "4-20 mA"
		}
		// точность в сотых долях процента: 0.10, 0.25 ... 0.70
		accuracy := 10 + (hash%5)*15
		return []SpecRow{
			{"Range", instrumentRanges[hash%len(instrumentRanges)]},
			{"Accuracy", fmt.Sprintf("±%d.%02d%%", accuracy/100, accuracy%100)},
			{"Class", instrumentClasses[hash%len(instrumentClasses)]},
			{"Signal", signal},
		}
	case ComponentLine:
		insulation := "None"
		switch hash % 3 {
		case 0:
			insulation = "Hot (H)"
		case 1:
			insulation = "Cold (C)"
		}
		return []SpecRow{
			{"Size", lineSizes[hash%len(lineSizes)]},
			{"Material", lineMaterials[hash%len(lineMaterials)]},
			{"Schedule", lineSchedules[hash%len(lineSchedules)]},
			{"Insulation", insulation},
		}
	case ComponentEquipment:
		return []SpecRow{
			{"Design Pres.", fmt.Sprintf("%d PSI", 50+(hash%8)*50)},
			{"Design Temp.", fmt.Sprintf("%d°F", 200+(hash%6)*75)},
			{"Rating", equipmentRatings[hash%len(equipmentRatings)]},
			{"Material", equipmentMaterials[hash%len(equipmentMaterials)]},
		}
	default:
		return []SpecRow{
			{"Size", pidSizes[hash%len(pidSizes)]},
			{"Rating", pidRatings[hash%len(pidRatings)]},
			{"Design Pres.", fmt.Sprintf("%d PSI", 100+(hash%10)*50)},
			{"Design Temp.", fmt.Sprintf("%d°F", 250+(hash%8)*50)},
		}
	}
}

func analysisMetrics(item SelectionItem, hash int) []AnalysisMetric {
	match := 15
	if item.Confidence > 0 {
		match = min(100, roundInt(item.Confidence*0.95+float64(hash%10)))
	}
	valid := min(100, 60+hash%40)
	if item.IsMandatory {
		valid = 100
	}
	completion := 30
	if item.IsSelected {
		completion = min(100, 75+hash%25)
	}
	return []AnalysisMetric{
		{"OCR", min(100, max(20, roundInt(item.Confidence)))},
		{"Match", match},
		{"Valid", valid},
		{"Compl", completion},
	}
}

// idHash сумма кодов символов id, общий источник справочных значений
func idHash(id string) int {
	hash := 0
	for _, r := range id {
		hash += int(r)
	}
	return hash
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
