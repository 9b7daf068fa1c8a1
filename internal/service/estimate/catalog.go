package estimate

import (
	"context"
	"log/slog"

	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/service/pricing"
	"embroidery-quote/internal/storage"
)

type PresetStorage interface {
	GetActivePresets(ctx context.Context) ([]*storage.Preset, error)
}

// PresetCatalog merges the built-in presets with rows from storage.
// Stored rows override built-ins by key; custom always stays a no-op and last.
type PresetCatalog struct {
	log     *slog.Logger
	storage PresetStorage
}

// NewPresetCatalog accepts a nil storage, in which case only built-ins are served.
func NewPresetCatalog(log *slog.Logger, storage PresetStorage) *PresetCatalog {
	return &PresetCatalog{log: log, storage: storage}
}

func (c *PresetCatalog) List(ctx context.Context) []constants.Preset {
	const op = "service.estimate.PresetCatalog.List"

	stored := c.stored(ctx, op)

	overrides := make(map[string]constants.Preset, len(stored))
	for _, p := range stored {
		overrides[p.Key] = p
	}

	result := make([]constants.Preset, 0, len(constants.BuiltinPresets)+len(stored))
	var custom constants.Preset
	builtin := make(map[string]bool, len(constants.BuiltinPresets))

	for _, p := range constants.BuiltinPresets {
		builtin[p.Key] = true
		if p.Key == constants.PresetCustom {
			custom = p
			continue
		}
		if o, ok := overrides[p.Key]; ok {
			result = append(result, o)
			continue
		}
		result = append(result, p)
	}

	for _, p := range stored {
		if !builtin[p.Key] {
			result = append(result, p)
		}
	}

	return append(result, custom)
}

func (c *PresetCatalog) Lookup(ctx context.Context, key string) (constants.Preset, bool) {
	for _, p := range c.List(ctx) {
		if p.Key == key {
			return p, true
		}
	}
	return constants.Preset{}, false
}

func (c *PresetCatalog) stored(ctx context.Context, op string) []constants.Preset {
	if c.storage == nil {
		return nil
	}

	rows, err := c.storage.GetActivePresets(ctx)
	if err != nil {
		c.log.Error("failed to load stored presets, using built-ins",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return nil
	}

	presets := make([]constants.Preset, 0, len(rows))
	for _, row := range rows {
		if row.Key == constants.PresetCustom {
			continue
		}
		presets = append(presets, FromStorage(row))
	}

	return presets
}

// FromStorage converts a catalog row; the multiplier is snapped onto the selector set.
func FromStorage(row *storage.Preset) constants.Preset {
	return constants.Preset{
		Key:   row.Key,
		Label: row.Label,
		Patch: &pricing.PresetPatch{
			BaseRate:             row.BaseRate,
			SetupFee:             row.SetupFee,
			MaterialCost:         row.MaterialCost,
			ThreadCost:           row.ThreadCost,
			ComplexityMultiplier: constants.NearestComplexity(row.ComplexityMultiplier).Multiplier,
			NumberOfAppliques:    row.NumberOfAppliques,
			AppliqueRate:         row.AppliqueRate,
		},
	}
}
