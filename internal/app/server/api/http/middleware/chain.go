package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

type Func = func(ctx huma.Context, next func(huma.Context))

// Chain - общий набор мидлварей, к которому группы операций добавляют свои
type Chain struct {
	base huma.Middlewares
}

// NewChain создает цепочку с базовыми мидлварями, они выполняются первыми
func NewChain(base ...Func) *Chain {
	c := &Chain{base: make(huma.Middlewares, 0, len(base))}
	for _, mw := range base {
		c.base = append(c.base, mw)
	}
	return c
}

// With возвращает копию базового набора с добавленными мидлварями
func (c *Chain) With(extra ...Func) huma.Middlewares {
	result := make(huma.Middlewares, 0, len(c.base)+len(extra))
	result = append(result, c.base...)
	for _, mw := range extra {
		result = append(result, mw)
	}
	return result
}
