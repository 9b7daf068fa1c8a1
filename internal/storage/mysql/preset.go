package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"embroidery-quote/internal/storage"
	"github.com/go-sql-driver/mysql"
)

const presetColumns = `id, preset_key, label, sort_order, is_active, base_rate, setup_fee,
		material_cost, thread_cost, complexity_multiplier, number_of_appliques, applique_rate`

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (*storage.Preset, error) {
	p := &storage.Preset{}
	err := row.Scan(
		&p.ID,
		&p.Key,
		&p.Label,
		&p.SortOrder,
		&p.IsActive,
		&p.BaseRate,
		&p.SetupFee,
		&p.MaterialCost,
		&p.ThreadCost,
		&p.ComplexityMultiplier,
		&p.NumberOfAppliques,
		&p.AppliqueRate,
	)
	return p, err
}

func (s *Storage) GetActivePresets(ctx context.Context) ([]*storage.Preset, error) {
	const op = "storage.mysql.GetActivePresets"

	query := `SELECT ` + presetColumns + ` FROM embroidery_presets WHERE is_active = TRUE ORDER BY sort_order, id`

	return s.queryPresets(ctx, op, query)
}

func (s *Storage) GetAllPresetsAdmin(ctx context.Context) ([]*storage.Preset, error) {
	const op = "storage.mysql.GetAllPresetsAdmin"

	query := `SELECT ` + presetColumns + ` FROM embroidery_presets ORDER BY sort_order, id`

	return s.queryPresets(ctx, op, query)
}

func (s *Storage) queryPresets(ctx context.Context, op, query string) ([]*storage.Preset, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var presets []*storage.Preset

	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		presets = append(presets, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return presets, nil
}

func (s *Storage) GetPresetByKey(ctx context.Context, key string) (*storage.Preset, error) {
	const op = "storage.mysql.GetPresetByKey"

	query := `SELECT ` + presetColumns + ` FROM embroidery_presets WHERE preset_key = ?`

	p, err := scanPreset(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: key=%q: %w", op, key, storage.ErrPresetNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *Storage) CreatePresetAdmin(ctx context.Context, p storage.Preset) error {
	const op = "storage.mysql.CreatePresetAdmin"

	stmt := `INSERT INTO embroidery_presets (preset_key, label, sort_order, is_active, base_rate, setup_fee,
		material_cost, thread_cost, complexity_multiplier, number_of_appliques, applique_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, stmt, p.Key, p.Label, p.SortOrder, p.IsActive, p.BaseRate, p.SetupFee,
		p.MaterialCost, p.ThreadCost, p.ComplexityMultiplier, p.NumberOfAppliques, p.AppliqueRate)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return fmt.Errorf("%s: key=%q: %w", op, p.Key, storage.ErrPresetExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdatePresetAdmin(ctx context.Context, key string, p storage.Preset) error {
	const op = "storage.mysql.UpdatePresetAdmin"

	stmt := `UPDATE embroidery_presets SET label=?, sort_order=?, is_active=?, base_rate=?, setup_fee=?,
		material_cost=?, thread_cost=?, complexity_multiplier=?, number_of_appliques=?, applique_rate=?
		WHERE preset_key=?`

	res, err := s.db.ExecContext(ctx, stmt, p.Label, p.SortOrder, p.IsActive, p.BaseRate, p.SetupFee,
		p.MaterialCost, p.ThreadCost, p.ComplexityMultiplier, p.NumberOfAppliques, p.AppliqueRate, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: key=%q: %w", op, key, storage.ErrPresetNotFound)
	}

	return nil
}
