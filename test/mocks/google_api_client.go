package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// GoogleAPIClient is a mock of geocoding.GoogleAPIClient.
type GoogleAPIClient struct {
	mock.Mock
}

func (m *GoogleAPIClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	ret := m.Called(ctx, r)

	var results []maps.GeocodingResult
	if v := ret.Get(0); v != nil {
		results = v.([]maps.GeocodingResult)
	}

	return results, ret.Error(1)
}

// NewGoogleAPIClient creates the mock and asserts its expectations on cleanup.
func NewGoogleAPIClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *GoogleAPIClient {
	m := &GoogleAPIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
