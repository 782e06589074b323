package health

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type stubProber struct {
	err error
}

func (s stubProber) Has(context.Context, string) (bool, error) {
	return false, s.err
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name            string
		probeErr        error
		expectedStorage string
	}{
		{
			name:            "health check returns OK",
			expectedStorage: "ok",
		},
		{
			name:            "storage down still returns OK",
			probeErr:        errors.New("connection refused"),
			expectedStorage: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(stubProber{err: tt.probeErr}, "pin_code", slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, tt.expectedStorage, output.Body.Storage)
		})
	}
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(stubProber{}, "pin_code", log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
