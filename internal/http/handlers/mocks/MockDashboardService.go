package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	core "github.com/vukan322/devdash/internal/core"
)

type MockDashboardService struct {
	mock.Mock
}

func NewMockDashboardService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDashboardService {
	m := &MockDashboardService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDashboardService) Refresh(ctx context.Context, h core.Handles) (core.Dashboard, error) {
	args := m.Called(ctx, h)
	d, _ := args.Get(0).(core.Dashboard)
	return d, args.Error(1)
}
