package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpid/internal/events"
)

type recorder struct {
	bus    *events.Bus
	topics []string
}

func newRecorder() *recorder {
	r := &recorder{bus: events.NewBus(nil)}
	for _, topic := range []string{events.ScreenChanged, events.SelectionChanged} {
		topic := topic
		r.bus.Subscribe(topic, func(any) { r.topics = append(r.topics, topic) })
	}
	return r
}

func (r *recorder) count(topic string) int {
	n := 0
	for _, t := range r.topics {
		if t == topic {
			n++
		}
	}
	return n
}

// advance проходит мастер до главного экрана
func advance(t *testing.T, m *StateMachine) {
	t.Helper()
	m.SetSelectedDivision("boilers")
	require.NoError(t, m.NavigateTo(ProductSelection))
	m.SetSelectedProduct("bidrum")
	require.NoError(t, m.NavigateTo(PfdBlockSelection))
	m.SetSelectedPfdBlocks([]string{"steam_drum", "economizer"})
	require.NoError(t, m.NavigateTo(MainHub))
}

func TestNavigateToCurrentScreenIsSilent(t *testing.T) {
	rec := newRecorder()
	m := NewStateMachine(rec.bus, nil)

	require.NoError(t, m.NavigateTo(DivisionSelection))
	assert.Zero(t, rec.count(events.ScreenChanged))
}

func TestNavigateToPublishes(t *testing.T) {
	rec := newRecorder()
	m := NewStateMachine(rec.bus, nil)

	var got any
	rec.bus.Subscribe(events.ScreenChanged, func(payload any) { got = payload })

	m.SetSelectedDivision("boilers")
	require.NoError(t, m.NavigateTo(ProductSelection))

	assert.Equal(t, 1, rec.count(events.ScreenChanged))
	assert.Equal(t, ProductSelection, got)
}

func TestNavigateToRejectsUnknownAndLockedScreens(t *testing.T) {
	m := NewStateMachine(nil, nil)

	assert.ErrorIs(t, m.NavigateTo(Screen("Settings")), ErrUnknownScreen)
	assert.ErrorIs(t, m.NavigateTo(ProductSelection), ErrScreenLocked)
	assert.ErrorIs(t, m.NavigateTo(MainHub), ErrScreenLocked)
	assert.Equal(t, DivisionSelection, m.CurrentScreen())

	advance(t, m)
	assert.ErrorIs(t, m.NavigateTo(BlockConfiguration), ErrScreenLocked)
	assert.False(t, m.IsReachable(BlockConfiguration))

	m.SetSelectedPfdBlock("steam_drum")
	assert.True(t, m.IsReachable(BlockConfiguration))
	require.NoError(t, m.NavigateTo(BlockConfiguration))

	// назад можно всегда
	require.NoError(t, m.NavigateTo(DivisionSelection))
}

func TestSetSelectedDivisionCascades(t *testing.T) {
	m := NewStateMachine(nil, nil)
	advance(t, m)
	m.SetSelectedPfdBlock("steam_drum")

	m.SetSelectedDivision("water")

	s := m.Snapshot()
	assert.Equal(t, "water", s.SelectedDivisionID)
	assert.Empty(t, s.SelectedProductID)
	assert.Empty(t, s.SelectedPfdBlockID)
	assert.Empty(t, s.SelectedPfdBlockIDs)
}

func TestSetSelectedProductCascades(t *testing.T) {
	m := NewStateMachine(nil, nil)
	advance(t, m)
	m.SetSelectedPfdBlock("steam_drum")

	m.SetSelectedProduct("single_drum")

	s := m.Snapshot()
	assert.Equal(t, "boilers", s.SelectedDivisionID)
	assert.Equal(t, "single_drum", s.SelectedProductID)
	assert.Empty(t, s.SelectedPfdBlockID)
	assert.Empty(t, s.SelectedPfdBlockIDs)
}

func TestSetSelectedPfdBlocksClearsActiveBlock(t *testing.T) {
	m := NewStateMachine(nil, nil)
	advance(t, m)
	m.SetSelectedPfdBlock("economizer")

	m.SetSelectedPfdBlocks([]string{"steam_drum"})

	assert.Empty(t, m.SelectedPfdBlockID())
	assert.Equal(t, []string{"steam_drum"}, m.SelectedPfdBlockIDs())
}

func TestEmptyIDsAreIgnored(t *testing.T) {
	rec := newRecorder()
	m := NewStateMachine(rec.bus, nil)
	m.SetSelectedDivision("boilers")

	m.SetSelectedDivision("")
	m.SetSelectedProduct("")
	m.SetSelectedPfdBlock("")

	assert.Equal(t, "boilers", m.SelectedDivisionID())
	assert.Equal(t, 1, rec.count(events.SelectionChanged))
}

func TestSelectedPfdBlockIDsIsACopy(t *testing.T) {
	m := NewStateMachine(nil, nil)
	ids := []string{"a", "b"}
	m.SetSelectedPfdBlocks(ids)
	ids[0] = "z"

	got := m.SelectedPfdBlockIDs()
	got[1] = "y"

	assert.Equal(t, []string{"a", "b"}, m.SelectedPfdBlockIDs())
}

func TestGoBack(t *testing.T) {
	tests := []struct {
		name       string
		from       Screen
		wantScreen Screen
		check      func(t *testing.T, s State)
	}{
		{"block config to hub keeps selection", BlockConfiguration, MainHub, func(t *testing.T, s State) {
			assert.Equal(t, "steam_drum", s.SelectedPfdBlockID)
			assert.Len(t, s.SelectedPfdBlockIDs, 2)
		}},
		{"hub to block selection clears blocks", MainHub, PfdBlockSelection, func(t *testing.T, s State) {
			assert.Empty(t, s.SelectedPfdBlockID)
			assert.Empty(t, s.SelectedPfdBlockIDs)
			assert.Equal(t, "bidrum", s.SelectedProductID)
		}},
		{"block selection to product clears product", PfdBlockSelection, ProductSelection, func(t *testing.T, s State) {
			assert.Empty(t, s.SelectedProductID)
			assert.Equal(t, "boilers", s.SelectedDivisionID)
		}},
		{"product to division clears everything", ProductSelection, DivisionSelection, func(t *testing.T, s State) {
			assert.Empty(t, s.SelectedDivisionID)
			assert.Empty(t, s.SelectedProductID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStateMachine(nil, nil)
			advance(t, m)
			m.SetSelectedPfdBlock("steam_drum")
			require.NoError(t, m.NavigateTo(BlockConfiguration))
			require.NoError(t, m.NavigateTo(tt.from))
			// NavigateTo назад не трогает выбор
			m.SetSelectedPfdBlock("steam_drum")

			require.NoError(t, m.GoBack())

			s := m.Snapshot()
			assert.Equal(t, tt.wantScreen, s.CurrentScreen)
			tt.check(t, s)
		})
	}
}

func TestReset(t *testing.T) {
	rec := newRecorder()
	m := NewStateMachine(rec.bus, nil)
	advance(t, m)

	m.Reset()

	s := m.Snapshot()
	assert.Equal(t, DivisionSelection, s.CurrentScreen)
	assert.Empty(t, s.SelectedDivisionID)
	assert.Empty(t, s.SelectedPfdBlockIDs)
	assert.Equal(t, 4, rec.count(events.ScreenChanged))
}

func TestWorkflowSteps(t *testing.T) {
	m := NewStateMachine(nil, nil)
	advance(t, m)

	steps := m.WorkflowSteps()
	require.Len(t, steps, 5)

	assert.Equal(t, "Division", steps[0].Label)
	assert.True(t, steps[0].IsCompleted)
	assert.True(t, steps[0].IsNavigable)

	assert.Equal(t, MainHub, steps[3].Screen)
	assert.True(t, steps[3].IsActive)
	assert.True(t, steps[3].IsNavigable)
	assert.False(t, steps[3].IsCompleted)

	assert.False(t, steps[4].IsNavigable)
	assert.Equal(t, "Block Config", steps[4].Label)

	assert.InDelta(t, 80.0, m.ProgressPercent(), 1e-9)
}

func TestParseScreen(t *testing.T) {
	s, err := ParseScreen("MainHub")
	require.NoError(t, err)
	assert.Equal(t, MainHub, s)

	_, err = ParseScreen("mainhub")
	assert.ErrorIs(t, err, ErrUnknownScreen)
}
