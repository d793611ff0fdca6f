package mockdata

import (
	"smartpid/internal/domain/geometry"
	"smartpid/internal/domain/matching"
)

// DefaultSheetName имя листа, когда для блока нет данных
const DefaultSheetName = "Sheet1"

// defaultPfdDetection подписи блоков на обзорной схеме котла
func defaultPfdDetection() matching.DetectionResult {
	return matching.DetectionResult{Items: []matching.DetectedTextItem{
		{Text: "STEAM DRUM", BoundingBox: geometry.BoundingBox{X: 0.35, Y: 0.15, Width: 0.12, Height: 0.03}, Confidence: 98.5},
		{Text: "DEAERATOR", BoundingBox: geometry.BoundingBox{X: 0.10, Y: 0.40, Width: 0.10, Height: 0.03}, Confidence: 97.2},
		{Text: "ECONOMIZER", BoundingBox: geometry.BoundingBox{X: 0.55, Y: 0.35, Width: 0.11, Height: 0.03}, Confidence: 96.8},
		{Text: "CHEMICAL DOSING", BoundingBox: geometry.BoundingBox{X: 0.75, Y: 0.25, Width: 0.14, Height: 0.03}, Confidence: 95.1},
		{Text: "BFW PUMPS", BoundingBox: geometry.BoundingBox{X: 0.20, Y: 0.65, Width: 0.10, Height: 0.03}, Confidence: 94.3},
		{Text: "BOILER FEED WATER PUMP", BoundingBox: geometry.BoundingBox{X: 0.45, Y: 0.70, Width: 0.20, Height: 0.03}, Confidence: 93.7},
		{Text: "BLOWDOWN TANK", BoundingBox: geometry.BoundingBox{X: 0.70, Y: 0.55, Width: 0.13, Height: 0.03}, Confidence: 97.9},
	}}
}

func item(id, name, match string, mandatory bool) matching.SpreadsheetItem {
	return matching.SpreadsheetItem{ItemID: id, ItemName: name, MatchText: match, IsMandatory: mandatory}
}

// builtinItems типовые перечни оборудования по блокам
var builtinItems = map[string][]matching.SpreadsheetItem{
	"steam_drum": {
		item("SD-001", "Steam Drum Assembly", "V-101", true),
		item("SD-002", "Level Indicator LI-101", "LI-101", false),
		item("SD-003", "Pressure Safety Valve", "PSV-101", true),
		item("SD-004", "Level Control Valve", "LCV-101", false),
		item("SD-005", "Steam Outlet Valve", "V-102", true),
		item("SD-006", "Drain Valve", "V-103", true),
		item("SD-007", "Temperature Indicator", "TI-101", false),
	},
	"deaerator": {
		item("DA-001", "Deaerator Tank", "TK-201", true),
		item("DA-002", "Spray Valve", "V-201", true),
		item("DA-003", "Vent Valve", "V-202", true),
		item("DA-004", "Level Transmitter", "LT-201", false),
		item("DA-005", "Pressure Indicator", "PI-201", false),
	},
	"economizer": {
		item("EC-001", "Economizer Coil", "E-301", true),
		item("EC-002", "Inlet Isolation Valve", "V-301", true),
		item("EC-003", "Outlet Isolation Valve", "V-302", true),
		item("EC-004", "Temperature Transmitter", "TT-301", false),
		item("EC-005", "Bypass Valve", "V-303", false),
		item("EC-006", "Drain Valve", "V-304", true),
	},
	"chemical_dosing": {
		item("CD-001", "Chemical Tank", "TK-401", true),
		item("CD-002", "Dosing Pump A", "P-401A", true),
		item("CD-003", "Dosing Pump B", "P-401B", true),
		item("CD-004", "Level Indicator", "LI-401", false),
		item("CD-005", "Agitator", "AG-401", false),
	},
	"bfw_pumps": {
		item("BP-001", "BFW Pump A", "P-501A", true),
		item("BP-002", "BFW Pump B", "P-501B", true),
		item("BP-003", "Suction Strainer", "STR-501", false),
		item("BP-004", "Check Valve", "V-501", true),
		item("BP-005", "Pressure Gauge", "PI-501", false),
	},
	"boiler_feed_water_pump": {
		item("BF-001", "Feed Water Pump", "P-601", true),
		item("BF-002", "Recirculation Valve", "V-601", true),
		item("BF-003", "Flow Transmitter", "FT-601", false),
	},
	"blowdown_tank": {
		item("BD-001", "Blowdown Tank", "TK-701", true),
		item("BD-002", "Blowdown Valve", "V-701", true),
		item("BD-003", "Flash Tank", "TK-702", true),
		item("BD-004", "Drain Valve", "V-702", true),
		item("BD-005", "Temperature Indicator", "TI-701", false),
		item("BD-006", "Level Switch", "LS-701", false),
	},
}

// genericItems набор для блоков без собственного перечня
var genericItems = []matching.SpreadsheetItem{
	item("GEN-001", "Main Equipment", "EQ-001", true),
	item("GEN-002", "Isolation Valve", "V-001", true),
	item("GEN-003", "Instrument", "INST-001", false),
}
