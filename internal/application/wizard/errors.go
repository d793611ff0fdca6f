package wizard

import "errors"

// Ошибки действий экранов мастера
var (
	ErrWrongScreen       = errors.New("action is not available on the current screen")
	ErrUnknownDivision   = errors.New("division not found")
	ErrUnknownProduct    = errors.New("product not found")
	ErrProductDisabled   = errors.New("product has no pfd blocks")
	ErrUnknownBlock      = errors.New("pfd block not found")
	ErrMandatoryLocked   = errors.New("mandatory entries cannot be deselected")
	ErrNoBlocksSelected  = errors.New("at least one pfd block must be selected")
	ErrUnknownSheet      = errors.New("sheet not found")
	ErrUnknownItem       = errors.New("item not found")
	ErrInvalidZoom       = errors.New("zoom must be positive")
	ErrInvalidImageSize  = errors.New("image size must be positive")
	ErrUnknownController = errors.New("no controller for screen")
)
