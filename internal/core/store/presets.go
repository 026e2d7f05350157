package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formlens/formlens/internal/dialog"
)

// Preset is a named, serializable field definition. Opaque validate scripts
// cannot be persisted, so presets carry only the declarative options; the
// spec is rebuilt through dialog.Build on load.
type Preset struct {
	Name             string   `json:"name"`
	InputType        string   `json:"input_type,omitempty"`
	Message          string   `json:"message,omitempty"`
	DefaultValue     string   `json:"default_value,omitempty"`
	LineHeight       *int     `json:"line_height,omitempty"`
	ReadOnly         bool     `json:"read_only,omitempty"`
	ValidateNotEmpty bool     `json:"validate_not_empty,omitempty"`
	ValidateSet      []string `json:"validate_set,omitempty"`
}

// Options converts the preset into builder options.
func (p Preset) Options() (dialog.Options, error) {
	inputType, err := dialog.ParseInputType(p.InputType)
	if err != nil {
		return dialog.Options{}, err
	}
	return dialog.Options{
		InputType:        inputType,
		Message:          p.Message,
		DefaultValue:     p.DefaultValue,
		LineHeight:       p.LineHeight,
		ReadOnly:         p.ReadOnly,
		ValidateNotEmpty: p.ValidateNotEmpty,
		ValidateSet:      p.ValidateSet,
	}, nil
}

// PresetRecord pairs a preset with its store metadata.
type PresetRecord struct {
	Preset    Preset
	UpdatedAt time.Time
}

// UpsertPreset creates or updates a preset record.
func (s *Store) UpsertPreset(ctx context.Context, preset Preset, updatedAt time.Time) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	name := strings.TrimSpace(preset.Name)
	if name == "" {
		return errors.New("preset name is required")
	}
	preset.Name = name

	payload, err := json.Marshal(preset)
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO presets (name, spec, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			spec = excluded.spec,
			updated_at = excluded.updated_at
	`, name, string(payload), updatedAt.UTC().Unix())
	if err != nil {
		return fmt.Errorf("store preset: %w", err)
	}

	return nil
}

// GetPreset returns a preset record by name, or nil when absent.
func (s *Store) GetPreset(ctx context.Context, name string) (*PresetRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("preset name is required")
	}

	var (
		specJSON  string
		updatedAt sql.NullInt64
	)

	row := s.DB.QueryRowContext(ctx, `
		SELECT spec, updated_at
		FROM presets
		WHERE name = ?
	`, name)

	if err := row.Scan(&specJSON, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch preset: %w", err)
	}

	var preset Preset
	if err := json.Unmarshal([]byte(specJSON), &preset); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if preset.Name == "" {
		preset.Name = name
	}

	record := &PresetRecord{Preset: preset}
	if updatedAt.Valid {
		record.UpdatedAt = time.Unix(updatedAt.Int64, 0).UTC()
	}

	return record, nil
}

// ListPresets returns all preset records sorted by name.
func (s *Store) ListPresets(ctx context.Context) ([]*PresetRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT spec, updated_at
		FROM presets
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var records []*PresetRecord
	for rows.Next() {
		var (
			specJSON  string
			updatedAt sql.NullInt64
		)
		if err := rows.Scan(&specJSON, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}

		var preset Preset
		if err := json.Unmarshal([]byte(specJSON), &preset); err != nil {
			return nil, fmt.Errorf("decode preset: %w", err)
		}

		record := &PresetRecord{Preset: preset}
		if updatedAt.Valid {
			record.UpdatedAt = time.Unix(updatedAt.Int64, 0).UTC()
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}

	return records, nil
}

// DeletePreset removes a preset by name. It reports whether a row existed.
func (s *Store) DeletePreset(ctx context.Context, name string) (bool, error) {
	if s == nil || s.DB == nil {
		return false, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.New("preset name is required")
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete preset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete preset: %w", err)
	}

	return affected > 0, nil
}
