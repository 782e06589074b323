package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func noop(ctx huma.Context, next func(huma.Context)) { next(ctx) }

func TestChain_With(t *testing.T) {
	chain := NewChain(noop, noop)

	first := chain.With(noop)
	second := chain.With()

	assert.Len(t, first, 3)
	assert.Len(t, second, 2)

	// Группы не делят общий слайс
	first[0] = nil
	assert.NotNil(t, second[0])
}
