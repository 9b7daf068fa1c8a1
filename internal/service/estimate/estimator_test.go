package estimate

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"embroidery-quote/internal/service/pricing"
	"github.com/stretchr/testify/assert"
)

func newTestEstimator() *Estimator {
	return New(slog.Default(), NewPresetCatalog(slog.Default(), nil))
}

func TestNew_StartsWithComputedDefaults(t *testing.T) {
	e := newTestEstimator()

	snap := e.Snapshot()

	assert.Equal(t, pricing.DefaultOrderSpec(), snap.Spec)
	assert.Equal(t, pricing.Compute(pricing.DefaultOrderSpec()), snap.Breakdown)
}

func TestUpdateField_RecomputesWholeBreakdown(t *testing.T) {
	e := newTestEstimator()

	snap := e.UpdateField(FieldQuantity, "5")

	assert.Equal(t, 5, snap.Spec.Quantity)
	assert.Equal(t, pricing.Compute(snap.Spec), snap.Breakdown)
	assert.Equal(t, 800.0, snap.Breakdown.SetupFee)
	assert.Equal(t, snap, e.Snapshot())
}

func TestUpdateField_Coercion(t *testing.T) {
	e := newTestEstimator()

	assert.Equal(t, 1, e.UpdateField(FieldQuantity, "-3").Spec.Quantity)
	assert.Equal(t, 0, e.UpdateField(FieldStitches, "lots").Spec.Stitches)
	assert.Equal(t, 0.0, e.UpdateField(FieldBaseRate, "").Spec.BaseRate)
	assert.Equal(t, "Acme", e.UpdateField(FieldCompanyName, "  Acme ").Spec.CompanyName)
	assert.True(t, e.UpdateField(FieldRushOrder, "true").Spec.RushOrder)
}

func TestUpdateField_UnknownFieldIsNoop(t *testing.T) {
	e := newTestEstimator()
	before := e.Snapshot()

	assert.Equal(t, before, e.UpdateField("discount", "50"))
}

func TestSetComplexity(t *testing.T) {
	e := newTestEstimator()

	snap := e.SetComplexity("1.5")
	assert.Equal(t, 1.5, snap.Spec.ComplexityMultiplier)
	assert.Equal(t, 320.0, snap.Breakdown.ComplexityAdjustment)

	// enumerated levels only
	assert.Equal(t, snap, e.SetComplexity("1.1"))
	assert.Equal(t, 0.8, e.UpdateField(FieldComplexityMultiplier, " 0.8 ").Spec.ComplexityMultiplier)
}

func TestUpdateField_ComplexityByMultiplier(t *testing.T) {
	tests := []struct {
		raw        string
		multiplier float64
		adjustment float64
	}{
		{"2", 2.0, 640},
		{"2.0", 2.0, 640},
		{"1", 1.0, 0},
		{"1.20", 1.2, 128},
		{"0.8", 0.8, -128},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e := newTestEstimator()
			e.SetComplexity("1.5")

			snap := e.UpdateField(FieldComplexityMultiplier, tt.raw)

			assert.Equal(t, tt.multiplier, snap.Spec.ComplexityMultiplier)
			assert.InDelta(t, tt.adjustment, snap.Breakdown.ComplexityAdjustment, 1e-9)
		})
	}
}

func TestSetRushOrder(t *testing.T) {
	e := newTestEstimator()

	snap := e.SetRushOrder(true)

	assert.Equal(t, pricing.RushFee, snap.Breakdown.RushFee)
	assert.Equal(t, 10840.0, snap.Breakdown.GrandTotal)
}

func TestApplyPreset_OverwritesOnlyPatchFields(t *testing.T) {
	e := newTestEstimator()
	e.UpdateField(FieldCompanyName, "Acme")
	e.UpdateField(FieldProjectName, "Team caps")
	e.UpdateField(FieldQuantity, "12")
	e.UpdateField(FieldStitches, "6500")
	e.SetRushOrder(true)
	before := e.Snapshot().Spec

	after := e.ApplyPreset(context.Background(), "jacket").Spec

	assert.Equal(t, before.CompanyName, after.CompanyName)
	assert.Equal(t, before.ProjectName, after.ProjectName)
	assert.Equal(t, before.Quantity, after.Quantity)
	assert.Equal(t, before.Stitches, after.Stitches)
	assert.Equal(t, before.RushOrder, after.RushOrder)

	assert.Equal(t, 80.0, after.BaseRate)
	assert.Equal(t, 8000.0, after.SetupFee)
	assert.Equal(t, 5800.0, after.MaterialCost)
	assert.Equal(t, 400.0, after.ThreadCost)
	assert.Equal(t, 1.2, after.ComplexityMultiplier)
	assert.Equal(t, 0, after.NumberOfAppliques)
	assert.Equal(t, 150.0, after.AppliqueRate)
}

func TestApplyPreset_CustomAndUnknownAreNoops(t *testing.T) {
	e := newTestEstimator()
	e.UpdateField(FieldSetupFee, "1234")
	before := e.Snapshot()

	assert.Equal(t, before, e.ApplyPreset(context.Background(), "custom"))
	assert.Equal(t, before, e.ApplyPreset(context.Background(), "spaceship"))
}

func TestReset(t *testing.T) {
	e := newTestEstimator()
	e.UpdateField(FieldQuantity, "40")
	e.SetRushOrder(true)

	snap := e.Reset()

	assert.Equal(t, pricing.DefaultOrderSpec(), snap.Spec)
	assert.Equal(t, 0.0, snap.Breakdown.RushFee)
}

func TestEstimator_ConcurrentMutationsStayConsistent(t *testing.T) {
	e := newTestEstimator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			e.SetRushOrder(i%2 == 0)
		}(i)
		go func() {
			defer wg.Done()
			snap := e.Snapshot()
			assert.Equal(t, pricing.Compute(snap.Spec), snap.Breakdown)
		}()
	}
	wg.Wait()
}
