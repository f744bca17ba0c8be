package mocks

import (
	"context"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/stretchr/testify/mock"
)

// Locator is a mock of api.Locator.
type Locator struct {
	mock.Mock
}

func (m *Locator) Locate(ctx context.Context, measurements []models.Measurement, inMiles bool) (*models.Coordinates, error) {
	ret := m.Called(ctx, measurements, inMiles)

	var coords *models.Coordinates
	if v := ret.Get(0); v != nil {
		coords = v.(*models.Coordinates)
	}

	return coords, ret.Error(1)
}

// NewLocator creates the mock and asserts its expectations on cleanup.
func NewLocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Locator {
	m := &Locator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Pinger is a mock of api.Pinger.
type Pinger struct {
	mock.Mock
}

func (m *Pinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// NewPinger creates the mock and asserts its expectations on cleanup.
func NewPinger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Pinger {
	m := &Pinger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
