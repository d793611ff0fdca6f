package navigation

// WorkflowStep шаг боковой панели
type WorkflowStep struct {
	StepNumber  int    `json:"stepNumber"`
	Label       string `json:"label"`
	Screen      Screen `json:"screen"`
	IsActive    bool   `json:"isActive"`
	IsCompleted bool   `json:"isCompleted"`
	IsNavigable bool   `json:"isNavigable"`
}

var stepLabels = map[Screen]string{
	DivisionSelection:  "Division",
	ProductSelection:   "Product",
	PfdBlockSelection:  "PFD Blocks",
	MainHub:            "Configure",
	BlockConfiguration: "Block Config",
}

// WorkflowSteps шаги мастера относительно текущего экрана
func (m *StateMachine) WorkflowSteps() []WorkflowStep {
	current := m.CurrentScreen().Index()

	steps := make([]WorkflowStep, len(Order))
	for i, screen := range Order {
		step := WorkflowStep{
			StepNumber:  i + 1,
			Label:       stepLabels[screen],
			Screen:      screen,
			IsActive:    i == current,
			IsCompleted: i < current,
		}
		step.IsNavigable = step.IsActive || step.IsCompleted
		steps[i] = step
	}
	return steps
}

// ProgressPercent доля пройденного пути: (номер шага / число шагов) × 100
func (m *StateMachine) ProgressPercent() float64 {
	current := m.CurrentScreen().Index()
	return float64(current+1) / float64(len(Order)) * 100
}
