package mocks

import (
	"context"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/stretchr/testify/mock"
)

// Provider is a mock of geocoding.Provider.
type Provider struct {
	mock.Mock
}

func (m *Provider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	ret := m.Called(ctx, address)

	var coords *models.Coordinates
	if v := ret.Get(0); v != nil {
		coords = v.(*models.Coordinates)
	}

	return coords, ret.Error(1)
}

// NewProvider creates the mock and asserts its expectations on cleanup.
func NewProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
