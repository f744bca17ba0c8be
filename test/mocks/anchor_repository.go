package mocks

import (
	"context"

	"github.com/UnknownOlympus/locus/internal/models"
	"github.com/stretchr/testify/mock"
)

// Interface is a mock of repository.Interface.
type Interface struct {
	mock.Mock
}

func (m *Interface) FetchAnchors(ctx context.Context, ids []string) ([]models.Anchor, error) {
	ret := m.Called(ctx, ids)

	var anchors []models.Anchor
	if v := ret.Get(0); v != nil {
		anchors = v.([]models.Anchor)
	}

	return anchors, ret.Error(1)
}

func (m *Interface) UpdateAnchorCoordinates(ctx context.Context, anchorID string, coords models.Coordinates) error {
	ret := m.Called(ctx, anchorID, coords)

	return ret.Error(0)
}

// NewInterface creates the mock and asserts its expectations on cleanup.
func NewInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *Interface {
	m := &Interface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
