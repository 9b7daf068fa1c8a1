package estimate

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"embroidery-quote/internal/constants"
	"embroidery-quote/internal/service/pricing"
)

const (
	FieldCompanyName          = "companyName"
	FieldProjectName          = "projectName"
	FieldQuantity             = "quantity"
	FieldStitches             = "stitches"
	FieldBaseRate             = "baseRate"
	FieldSetupFee             = "setupFee"
	FieldMaterialCost         = "materialCost"
	FieldThreadCost           = "threadCost"
	FieldComplexityMultiplier = "complexityMultiplier"
	FieldNumberOfAppliques    = "numberOfAppliques"
	FieldAppliqueRate         = "appliqueRate"
	FieldRushOrder            = "rushOrder"
)

type PresetLookup interface {
	Lookup(ctx context.Context, key string) (constants.Preset, bool)
}

type Snapshot struct {
	Spec      pricing.OrderSpec     `json:"spec"`
	Breakdown pricing.CostBreakdown `json:"breakdown"`
}

// Estimator owns the live order and its breakdown. Every mutation replaces
// both under the lock, so readers never see a breakdown from another spec.
type Estimator struct {
	log     *slog.Logger
	presets PresetLookup

	mu        sync.Mutex
	spec      pricing.OrderSpec
	breakdown pricing.CostBreakdown
}

func New(log *slog.Logger, presets PresetLookup) *Estimator {
	spec := pricing.DefaultOrderSpec()
	return &Estimator{
		log:       log,
		presets:   presets,
		spec:      spec,
		breakdown: pricing.Compute(spec),
	}
}

func (e *Estimator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{Spec: e.spec, Breakdown: e.breakdown}
}

func (e *Estimator) mutate(fn func(spec *pricing.OrderSpec)) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.spec
	fn(&next)

	e.spec = next
	e.breakdown = pricing.Compute(next)

	return Snapshot{Spec: e.spec, Breakdown: e.breakdown}
}

var fieldSetters = map[string]func(spec *pricing.OrderSpec, raw string){
	FieldCompanyName:       func(s *pricing.OrderSpec, raw string) { s.CompanyName = strings.TrimSpace(raw) },
	FieldProjectName:       func(s *pricing.OrderSpec, raw string) { s.ProjectName = strings.TrimSpace(raw) },
	FieldQuantity:          func(s *pricing.OrderSpec, raw string) { s.Quantity = CoerceQuantity(raw) },
	FieldStitches:          func(s *pricing.OrderSpec, raw string) { s.Stitches = CoerceCount(raw) },
	FieldBaseRate:          func(s *pricing.OrderSpec, raw string) { s.BaseRate = CoerceAmount(raw) },
	FieldSetupFee:          func(s *pricing.OrderSpec, raw string) { s.SetupFee = CoerceAmount(raw) },
	FieldMaterialCost:      func(s *pricing.OrderSpec, raw string) { s.MaterialCost = CoerceAmount(raw) },
	FieldThreadCost:        func(s *pricing.OrderSpec, raw string) { s.ThreadCost = CoerceAmount(raw) },
	FieldNumberOfAppliques: func(s *pricing.OrderSpec, raw string) { s.NumberOfAppliques = CoerceCount(raw) },
	FieldAppliqueRate:      func(s *pricing.OrderSpec, raw string) { s.AppliqueRate = CoerceAmount(raw) },
	FieldRushOrder:         func(s *pricing.OrderSpec, raw string) { s.RushOrder = CoerceFlag(raw) },
}

// UpdateField sets one field from free text. Unparseable input falls back to
// the field's safe default; unknown fields leave the order unchanged.
func (e *Estimator) UpdateField(field, raw string) Snapshot {
	const op = "service.estimate.UpdateField"

	if field == FieldComplexityMultiplier {
		return e.SetComplexity(raw)
	}

	set, ok := fieldSetters[field]
	if !ok {
		e.log.Debug("unknown field ignored", slog.String("op", op), slog.String("field", field))
		return e.Snapshot()
	}

	return e.mutate(func(spec *pricing.OrderSpec) { set(spec, raw) })
}

// SetComplexity accepts only enumerated levels, by key or by multiplier.
func (e *Estimator) SetComplexity(key string) Snapshot {
	const op = "service.estimate.SetComplexity"

	c, ok := ResolveComplexity(key)
	if !ok {
		e.log.Debug("unknown complexity key ignored", slog.String("op", op), slog.String("key", key))
		return e.Snapshot()
	}

	return e.mutate(func(spec *pricing.OrderSpec) { spec.ComplexityMultiplier = c.Multiplier })
}

func (e *Estimator) SetRushOrder(rush bool) Snapshot {
	return e.mutate(func(spec *pricing.OrderSpec) { spec.RushOrder = rush })
}

// ApplyPreset overwrites the preset's pricing fields. custom and unknown keys are no-ops.
func (e *Estimator) ApplyPreset(ctx context.Context, key string) Snapshot {
	const op = "service.estimate.ApplyPreset"

	preset, ok := e.presets.Lookup(ctx, key)
	if !ok || preset.Patch == nil {
		e.log.Debug("preset has no patch", slog.String("op", op), slog.String("key", key))
		return e.Snapshot()
	}

	patch := *preset.Patch
	return e.mutate(patch.Apply)
}

func (e *Estimator) Reset() Snapshot {
	return e.mutate(func(spec *pricing.OrderSpec) { *spec = pricing.DefaultOrderSpec() })
}
