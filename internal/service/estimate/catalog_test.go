package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPresetStorage struct {
	mock.Mock
}

func (m *MockPresetStorage) GetActivePresets(ctx context.Context) ([]*storage.Preset, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	presets, ok := args.Get(0).([]*storage.Preset)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.Preset, got %T", args.Get(0))
	}

	return presets, args.Error(1)
}

func keys(presets []constants.Preset) []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Key)
	}
	return out
}

func TestPresetCatalog_BuiltinsOnly(t *testing.T) {
	catalog := NewPresetCatalog(slog.Default(), nil)

	list := catalog.List(context.Background())

	assert.Equal(t, []string{"bringYourOwn", "cap", "polo", "jacket", "custom"}, keys(list))

	custom, ok := catalog.Lookup(context.Background(), "custom")
	require.True(t, ok)
	assert.Nil(t, custom.Patch)

	_, ok = catalog.Lookup(context.Background(), "nope")
	assert.False(t, ok)
}

func TestPresetCatalog_StoredOverridesAndExtras(t *testing.T) {
	mockStorage := new(MockPresetStorage)
	mockStorage.On("GetActivePresets", mock.Anything).Return([]*storage.Preset{
		{Key: "polo", Label: "ポロシャツ（2024）", SetupFee: 5500, BaseRate: 85, ComplexityMultiplier: 1.0},
		{Key: "tote", Label: "トートバッグ", SetupFee: 3000, BaseRate: 80, ComplexityMultiplier: 1.3},
		{Key: "custom", Label: "should be ignored", SetupFee: 1},
	}, nil)

	catalog := NewPresetCatalog(slog.Default(), mockStorage)
	list := catalog.List(context.Background())

	assert.Equal(t, []string{"bringYourOwn", "cap", "polo", "jacket", "tote", "custom"}, keys(list))

	polo := list[2]
	assert.Equal(t, "ポロシャツ（2024）", polo.Label)
	assert.Equal(t, 5500.0, polo.Patch.SetupFee)

	tote := list[4]
	assert.Equal(t, 1.2, tote.Patch.ComplexityMultiplier)

	assert.Nil(t, list[5].Patch)
	mockStorage.AssertExpectations(t)
}

func TestPresetCatalog_StorageErrorFallsBack(t *testing.T) {
	mockStorage := new(MockPresetStorage)
	mockStorage.On("GetActivePresets", mock.Anything).Return(nil, assert.AnError)

	catalog := NewPresetCatalog(slog.Default(), mockStorage)

	assert.Equal(t, []string{"bringYourOwn", "cap", "polo", "jacket", "custom"}, keys(catalog.List(context.Background())))
	mockStorage.AssertExpectations(t)
}
