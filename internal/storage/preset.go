package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrPresetExists   = errors.New("preset already exists")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset is a preset catalog row. Rows override built-in presets with the same key.
type Preset struct {
	ID                   int64   `json:"id"`
	Key                  string  `json:"key"`
	Label                string  `json:"label"`
	SortOrder            int     `json:"sort_order"`
	IsActive             bool    `json:"is_active"`
	BaseRate             float64 `json:"base_rate"`
	SetupFee             float64 `json:"setup_fee"`
	MaterialCost         float64 `json:"material_cost"`
	ThreadCost           float64 `json:"thread_cost"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	NumberOfAppliques    int     `json:"number_of_appliques"`
	AppliqueRate         float64 `json:"applique_rate"`
}

// Validate checks what the database cannot: a usable key and label, no negative amounts.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidPreset)
	}
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidPreset)
	}

	amounts := map[string]float64{
		"base_rate":     p.BaseRate,
		"setup_fee":     p.SetupFee,
		"material_cost": p.MaterialCost,
		"thread_cost":   p.ThreadCost,
		"applique_rate": p.AppliqueRate,
	}
	for name, v := range amounts {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidPreset, name)
		}
	}
	if p.NumberOfAppliques < 0 {
		return fmt.Errorf("%w: number_of_appliques must not be negative", ErrInvalidPreset)
	}
	if p.ComplexityMultiplier <= 0 {
		return fmt.Errorf("%w: complexity_multiplier must be positive", ErrInvalidPreset)
	}

	return nil
}
