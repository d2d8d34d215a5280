package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.Generator = (*Generator)(nil)

// Generator is a mock implementation of laradoc.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req laradoc.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req laradoc.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}
