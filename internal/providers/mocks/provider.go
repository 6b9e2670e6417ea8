package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vukan322/devdash/internal/providers"
)

type Provider[S providers.Stats] struct {
	mock.Mock
}

func (m *Provider[S]) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Provider[S]) Fetch(ctx context.Context, handle string) (S, error) {
	args := m.Called(ctx, handle)
	stats, _ := args.Get(0).(S)
	return stats, args.Error(1)
}
