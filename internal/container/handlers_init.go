package container

import (
	cataloghandler "smartpid/internal/api/handlers/catalog"
	"smartpid/internal/api/handlers/common"
	eventshandler "smartpid/internal/api/handlers/events"
	revisionhandler "smartpid/internal/api/handlers/revision"
	sessionhandler "smartpid/internal/api/handlers/session"
	spreadsheethandler "smartpid/internal/api/handlers/spreadsheet"
	systemhandler "smartpid/internal/api/handlers/system"
	toolshandler "smartpid/internal/api/handlers/tools"
	wizardhandler "smartpid/internal/api/handlers/wizard"
)

// Version версия сервиса в ответе health
const Version = "1.0.0"

// Handlers HTTP обработчики сервиса
type Handlers struct {
	Catalog     *cataloghandler.Handler
	Wizard      *wizardhandler.Handler
	Session     *sessionhandler.Handler
	Revision    *revisionhandler.Handler
	Tools       *toolshandler.Handler
	Spreadsheet *spreadsheethandler.Handler
	Events      *eventshandler.Handler
	System      *systemhandler.Handler
}

// initHandlers создает обработчики поверх уже готовых хранилищ
func (c *Container) initHandlers() {
	base := common.NewBaseHandler()

	c.Handlers = &Handlers{
		Catalog:     cataloghandler.NewHandler(base, c.Catalog),
		Wizard:      wizardhandler.NewHandler(base, c.App),
		Session:     sessionhandler.NewHandler(base, c.Session),
		Revision:    revisionhandler.NewHandler(base, c.Revisions),
		Tools:       toolshandler.NewHandler(base, c.Classifier),
		Spreadsheet: spreadsheethandler.NewHandler(base, c.App, c.Classifier),
		Events:      eventshandler.NewHandler(c.Bus),
		System:      systemhandler.NewHandler(base, c.Catalog, systemhandler.StorageStatus{
			Backend:  c.Config.StorageBackend,
			Degraded: c.StorageDegraded,
		}, Version),
	}
}
