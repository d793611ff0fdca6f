package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"smartpid/internal/application/wizard"
	"smartpid/internal/domain/navigation"
	"smartpid/internal/domain/revision"
	apperrors "smartpid/server/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown block", fmt.Errorf("%w: %q", wizard.ErrUnknownBlock, "x"), http.StatusNotFound},
		{"revision", revision.ErrRevisionNotFound, http.StatusNotFound},
		{"wrong screen", wizard.ErrWrongScreen, http.StatusConflict},
		{"locked", fmt.Errorf("wrap: %w", navigation.ErrScreenLocked), http.StatusConflict},
		{"zoom", wizard.ErrInvalidZoom, http.StatusBadRequest},
		{"app error", apperrors.NewTooManyRequestsError("slow"), http.StatusTooManyRequests},
		{"other", errors.New("disk"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}
