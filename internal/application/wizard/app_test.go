package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"smartpid/internal/domain/catalog"
	"smartpid/internal/domain/matching"
	"smartpid/internal/domain/mockdata"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/revision"
	"smartpid/internal/domain/session"
	"smartpid/internal/events"
	"smartpid/internal/infrastructure/persistence"
)

type AppSuite struct {
	suite.Suite
	ctx  context.Context
	deps Deps
	app  *App
}

func (s *AppSuite) SetupTest() {
	s.ctx = context.Background()

	bus := events.NewBus(nil)
	kv := persistence.NewMemoryStore()
	nav := navigation.NewStateMachine(bus, nil)

	cat := catalog.NewStore("", nil)
	require.True(s.T(), cat.Load(s.ctx).IsSuccess)

	s.deps = Deps{
		Catalog:    cat,
		MockData:   mockdata.NewStore("", nil),
		Session:    session.NewStore(nav, kv, bus, nil),
		Navigation: nav,
		Revisions:  revision.NewStore(kv, bus, nil),
		Bus:        bus,
		Images:     fixedSize{1600, 1000},
	}
	s.app = New(s.deps)
	require.NoError(s.T(), s.app.Start(s.ctx))
}

func (s *AppSuite) TearDownTest() {
	s.app.Stop()
}

// toHub проходит первые три шага для Boilers / Single Drum с экономайзером
func (s *AppSuite) toHub() {
	s.Require().NoError(s.app.SelectDivision("boilers"))
	s.Require().NoError(s.app.SelectProduct("single_drum"))
	s.Require().NoError(s.app.ToggleBlock("economizer"))
	s.Require().NoError(s.app.Continue())
	s.Require().Equal(navigation.MainHub, s.app.View().Screen)
}

func (s *AppSuite) TestStartMountsDivisionSelection() {
	view := s.app.View()

	s.Equal(navigation.DivisionSelection, view.Screen)
	s.Equal(20.0, view.ProgressPercent)
	s.Len(view.Steps, 5)
	s.Require().NotNil(view.ActiveRevision)
	s.Equal("A", view.ActiveRevision.Label)

	content, ok := view.Content.(DivisionView)
	s.Require().True(ok)
	s.Require().Len(content.Divisions, 3)
	s.Equal("boilers", content.Divisions[0].ID)
	s.Equal(2, content.Divisions[0].ProductCount)
	s.Equal("#0078D4", content.Divisions[0].IconColor)
	s.Equal("#6CCB5F", content.Divisions[1].IconColor)
	s.Empty(content.LoadError)
}

func (s *AppSuite) TestEndToEndConfiguration() {
	s.Require().NoError(s.app.SelectDivision("boilers"))

	products, ok := s.app.View().Content.(ProductView)
	s.Require().True(ok)
	s.Equal([]string{"Boilers"}, products.Breadcrumb)
	s.Require().Len(products.Products, 2)
	s.Equal(7, products.Products[0].BlockCount)
	s.Equal(3, products.Products[0].MandatoryCount)

	s.Require().NoError(s.app.SelectProduct("single_drum"))

	blocks, ok := s.app.View().Content.(BlockSelectionView)
	s.Require().True(ok)
	s.Equal(2, blocks.TotalCount)
	s.Equal(1, blocks.MandatoryCount)
	s.Equal(1, blocks.SelectedCount)
	s.True(blocks.Blocks[0].IsSelected, "mandatory block is pre-checked")
	s.True(blocks.CanContinue)

	s.ErrorIs(s.app.ToggleBlock("steam_drum"), ErrMandatoryLocked)
	s.ErrorIs(s.app.ToggleBlock("nope"), ErrUnknownBlock)
	s.Require().NoError(s.app.ToggleBlock("economizer"))
	s.Require().NoError(s.app.Continue())

	s.Equal([]string{"steam_drum", "economizer"}, s.deps.Navigation.SelectedPfdBlockIDs())

	hub, ok := s.app.View().Content.(HubView)
	s.Require().True(ok)
	s.Equal(HubProgress{Configured: 0, Total: 2, Percent: 0, Summary: "0 of 2 configured"}, hub.Progress)
	s.Require().Len(hub.Buttons, 2)
	s.Equal("steam_drum", hub.Buttons[0].BlockID)
	s.InDelta(560.0, hub.Buttons[0].Coords.X, 1e-9)
	s.InDelta(150.0, hub.Buttons[0].Coords.Y, 1e-9)

	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))

	cfg, ok := s.app.View().Content.(BlockConfigView)
	s.Require().True(ok)
	s.Equal("steam_drum", cfg.BlockID)
	s.Equal("Steam Drum", cfg.BlockName)
	s.Equal("assets/images/sheet-steam_drum-0.png", cfg.ImagePath)
	s.Equal(7, cfg.ItemCount)
	s.Equal("4 mandatory ✓ | 0 of 3 optional selected", cfg.Summary)
	s.Len(cfg.Overlays, 7)

	s.ErrorIs(s.app.ToggleItem("SD-001"), ErrMandatoryLocked)
	s.Require().NoError(s.app.ToggleItem("SD-002"))

	saved, err := s.app.Save(s.ctx)
	s.Require().NoError(err)
	s.True(saved.IsConfigured)
	s.Equal([]string{"SD-001", "SD-002", "SD-003", "SD-005", "SD-006"},
		saved.SheetConfigurations[mockdata.DefaultSheetName].SelectedItemIDs)

	next, ok := s.deps.Session.NextPendingBlockID()
	s.Require().True(ok)
	s.Equal("economizer", next)

	s.Require().NoError(s.app.SaveAndContinue(s.ctx))
	cfg, ok = s.app.View().Content.(BlockConfigView)
	s.Require().True(ok)
	s.Equal(navigation.BlockConfiguration, s.app.View().Screen)
	s.Equal("economizer", cfg.BlockID, "next pending block is mounted on the same screen")

	s.Require().NoError(s.app.SaveAndContinue(s.ctx))
	hub, ok = s.app.View().Content.(HubView)
	s.Require().True(ok)
	s.Equal(2, hub.Progress.Configured)
	s.Equal(100, hub.Progress.Percent)
	s.True(s.deps.Session.AllBlocksConfigured())
}

func (s *AppSuite) TestSavedSelectionsAreRestored() {
	s.toHub()
	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))
	s.Require().NoError(s.app.ToggleItem("SD-007"))
	_, err := s.app.Save(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.app.NavigateTo(navigation.MainHub))

	hub := s.app.View().Content.(HubView)
	s.Equal(StatusConfigured, hub.Blocks[0].Status)
	s.Equal(5, hub.Blocks[0].Details.SelectedItems)
	s.Equal(71, hub.Blocks[0].Details.CompletionPct)
	s.Equal(100, hub.Blocks[0].Details.ConfigPct)
	s.Equal(StatusPending, hub.Blocks[1].Status)
	s.Equal(67, hub.Blocks[1].Details.CompletionPct)
	s.Equal(40, hub.Blocks[1].Details.ConfigPct)

	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))
	cfg := s.app.View().Content.(BlockConfigView)
	for _, item := range cfg.Items {
		switch item.ID {
		case "SD-007":
			s.True(item.IsSelected)
		case "SD-002", "SD-004":
			s.False(item.IsSelected)
		}
	}
}

func (s *AppSuite) TestGenerateOpensFirstBlock() {
	s.toHub()
	s.Require().NoError(s.app.Generate())
	s.Equal("steam_drum", s.deps.Navigation.SelectedPfdBlockID())
	s.Equal(navigation.BlockConfiguration, s.app.View().Screen)
}

func (s *AppSuite) TestStartOver() {
	s.toHub()
	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))
	_, err := s.app.Save(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.app.NavigateTo(navigation.MainHub))

	s.Require().NoError(s.app.StartOver(s.ctx))

	s.Equal(navigation.DivisionSelection, s.app.View().Screen)
	s.Empty(s.deps.Session.All())
	state := s.app.Navigation()
	s.Empty(state.SelectedDivisionID)
	s.Empty(state.SelectedPfdBlockIDs)
}

func (s *AppSuite) TestSidebarReturnKeepsBlockSelection() {
	s.toHub()
	s.Require().NoError(s.app.NavigateTo(navigation.PfdBlockSelection))

	blocks := s.app.View().Content.(BlockSelectionView)
	s.Equal(2, blocks.SelectedCount, "previously selected optional block stays checked")
}

func (s *AppSuite) TestGoBackClearsBlockSet() {
	s.toHub()
	s.Require().NoError(s.app.GoBack())

	s.Equal(navigation.PfdBlockSelection, s.app.View().Screen)
	s.Empty(s.deps.Navigation.SelectedPfdBlockIDs())
	blocks := s.app.View().Content.(BlockSelectionView)
	s.Equal(1, blocks.SelectedCount)
}

func (s *AppSuite) TestHubRedirectsWithoutBlocks() {
	s.toHub()
	s.deps.Navigation.SetSelectedPfdBlocks(nil)

	s.app.mu.Lock()
	err := s.app.mount(s.ctx, navigation.MainHub)
	s.app.mu.Unlock()
	s.Require().NoError(err)

	s.Equal(navigation.PfdBlockSelection, s.app.View().Screen)
	_, ok := s.app.View().Content.(BlockSelectionView)
	s.True(ok, "redirect replaces the mounted controller")
}

func (s *AppSuite) TestActionErrors() {
	s.ErrorIs(s.app.SelectProduct("bidrum"), ErrWrongScreen)
	s.ErrorIs(s.app.SelectDivision("missing"), ErrUnknownDivision)

	s.Require().NoError(s.app.SelectDivision("renewables"))
	s.ErrorIs(s.app.SelectProduct("biomass_boiler"), ErrProductDisabled)
	s.ErrorIs(s.app.SelectProduct("missing"), ErrUnknownProduct)
	s.Equal(navigation.ProductSelection, s.app.View().Screen)

	s.ErrorIs(s.app.NavigateTo(navigation.MainHub), navigation.ErrScreenLocked)
}

func (s *AppSuite) TestBlockConfigurationViewerActions() {
	s.toHub()
	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))

	s.ErrorIs(s.app.SelectSheet(1), ErrUnknownSheet)
	s.ErrorIs(s.app.SetZoom(0), ErrInvalidZoom)
	s.ErrorIs(s.app.SetImageSize(0, 10), ErrInvalidImageSize)
	s.ErrorIs(s.app.HighlightItem("missing"), ErrUnknownItem)

	s.Require().NoError(s.app.SetZoom(10))
	s.Require().NoError(s.app.SetImageSize(1000, 500))
	s.Require().NoError(s.app.HighlightItem("SD-002"))
	s.Require().NoError(s.app.HighlightItem("SD-003"))

	cfg := s.app.View().Content.(BlockConfigView)
	s.Equal(MaxZoom, cfg.Zoom)
	s.Equal(1000, cfg.ImageWidth)

	highlighted := 0
	for _, item := range cfg.Items {
		if item.IsHighlighted {
			highlighted++
			s.Equal("SD-003", item.ID)
		}
	}
	s.Equal(1, highlighted)

	s.Require().NotNil(cfg.Detail)
	s.Equal("SD-003", cfg.Detail.ItemID)
	s.Equal(ComponentGeneric, cfg.Detail.ComponentType)
	s.Equal("Mandatory", cfg.Detail.Status)
	s.Equal("PSV-101", cfg.Detail.TagRef)
	s.Equal("high", cfg.Detail.ConfidenceClass)
	s.Equal([]SpecRow{
		{"Size", `8"`},
		{"Rating", "300#"},
		{"Design Pres.", "250 PSI"},
		{"Design Temp.", "600°F"},
	}, cfg.Detail.Specs)

	first := cfg.Overlays[0]
	s.InDelta(0.05*1000*MaxZoom, first.Coords.X, 1e-9)
	s.InDelta(0.08*500*MaxZoom, first.Coords.Y, 1e-9)

	s.Require().NoError(s.app.HighlightItem(""))
	cfg = s.app.View().Content.(BlockConfigView)
	s.Nil(cfg.Detail)
	for _, item := range cfg.Items {
		s.False(item.IsHighlighted)
	}
}

func (s *AppSuite) TestReport() {
	s.toHub()
	s.Require().NoError(s.app.ConfigureBlock("steam_drum"))
	s.Require().NoError(s.app.ToggleItem("SD-002"))
	_, err := s.app.Save(s.ctx)
	s.Require().NoError(err)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := s.app.Report(now)

	s.Equal("Boilers", report.Division)
	s.Equal("Single Drum", report.Product)
	s.Equal("Rev 0 (A)", report.Revision)
	s.Equal(now, report.GeneratedAt)
	s.Require().Len(report.Blocks, 2)

	steam := report.Blocks[0]
	s.True(steam.IsConfigured)
	s.Require().Len(steam.Sheets, 1)
	selected := map[string]bool{}
	for _, item := range steam.Sheets[0].Items {
		selected[item.ItemID] = item.IsSelected
		s.True(item.IsMatched)
	}
	s.True(selected["SD-002"])
	s.False(selected["SD-004"])

	eco := report.Blocks[1]
	s.False(eco.IsConfigured)
	for _, item := range eco.Sheets[0].Items {
		s.Equal(item.IsMandatory, item.IsSelected)
	}
}

func (s *AppSuite) TestImportSheetsRemountsOpenBlock() {
	s.toHub()
	s.Require().NoError(s.app.ConfigureBlock("economizer"))

	err := s.app.ImportSheets("economizer", []mockdata.Sheet{
		{Name: "Coils", Items: []matching.SpreadsheetItem{{ItemID: "X-1", ItemName: "Coil", MatchText: "E-900", IsMandatory: true}}},
		{Name: "Valves", Items: []matching.SpreadsheetItem{{ItemID: "X-2", ItemName: "Valve", MatchText: "V-900"}}},
	})
	s.Require().NoError(err)

	cfg := s.app.View().Content.(BlockConfigView)
	s.Require().Len(cfg.Tabs, 2)
	s.Equal("Coils", cfg.Tabs[0].Name)
	s.Equal("1 mandatory ✓ | 0 of 0 optional selected", cfg.Summary)

	s.Require().NoError(s.app.SelectSheet(1))
	s.Require().NoError(s.app.ToggleItem("X-2"))
	saved, err := s.app.Save(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"X-2"}, saved.SheetConfigurations["Valves"].SelectedItemIDs)
	s.Equal([]string{"X-1"}, saved.SheetConfigurations["Coils"].SelectedItemIDs)
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func TestSummary(t *testing.T) {
	items := []SelectionItem{
		{ID: "1", IsMandatory: true, IsSelected: true},
		{ID: "2", IsSelected: true},
		{ID: "3"},
		{ID: "4"},
	}
	assert.Equal(t, "1 mandatory ✓ | 1 of 3 optional selected", summary(items))
	assert.Equal(t, "0 mandatory ✓ | 0 of 0 optional selected", summary(nil))
}

func TestContinueRequiresSelection(t *testing.T) {
	c := &PfdBlockSelectionController{blocks: []BlockChoice{{ID: "economizer"}}}
	assert.ErrorIs(t, c.Continue(), ErrNoBlocksSelected)
}
