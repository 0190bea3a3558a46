// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mdhender/ffrkconv/model"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ArchiveCapture archives a capture file and its abilities in a single
// transaction. A capture whose SHA256 is already archived is not inserted
// again; the existing id is returned with duplicate set. If any insert
// fails, nothing is archived.
func (s *SQLiteStore) ArchiveCapture(ctx context.Context, cf *model.CaptureFile, rows []*model.AbilityRow) (id int64, duplicate bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	id, duplicate, err = insertCapture(ctx, tx, cf)
	if err != nil {
		return 0, false, err
	} else if duplicate {
		return id, true, nil
	}
	for _, row := range rows {
		row.CaptureID = id
		if _, err := insertAbility(ctx, tx, row); err != nil {
			cf.ID = 0
			return 0, false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit archive tx: %w", err)
	}
	return id, false, nil
}

// InsertCapture archives a capture file. A capture whose SHA256 is already
// archived is not inserted again; the existing id is returned with
// duplicate set.
func (s *SQLiteStore) InsertCapture(ctx context.Context, cf *model.CaptureFile) (id int64, duplicate bool, err error) {
	return insertCapture(ctx, s.db, cf)
}

func insertCapture(ctx context.Context, q querier, cf *model.CaptureFile) (id int64, duplicate bool, err error) {
	existing, err := captureBySHA256(ctx, q, cf.SHA256)
	if err != nil {
		return 0, false, err
	} else if existing != nil {
		cf.ID = existing.ID
		return existing.ID, true, nil
	}

	createdAt := cf.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	const query = `
		INSERT INTO captures (path, region, sha256, created_at)
		VALUES (?, ?, ?, ?)
	`
	res, err := q.ExecContext(ctx, query, cf.Path, cf.Region, cf.SHA256, createdAt.Format(time.RFC3339))
	if err != nil {
		return 0, false, fmt.Errorf("insert capture: %w", err)
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, false, fmt.Errorf("insert capture: %w", err)
	}
	cf.ID, cf.CreatedAt = id, createdAt
	return id, false, nil
}

// CaptureBySHA256 returns an archived capture, or nil if not found.
func (s *SQLiteStore) CaptureBySHA256(ctx context.Context, sha256 string) (*model.CaptureFile, error) {
	return captureBySHA256(ctx, s.db, sha256)
}

func captureBySHA256(ctx context.Context, q querier, sha256 string) (*model.CaptureFile, error) {
	const query = `
		SELECT id, path, region, sha256, created_at
		FROM captures
		WHERE sha256 = ?
	`
	var cf model.CaptureFile
	var createdAt string
	err := q.QueryRowContext(ctx, query, sha256).Scan(&cf.ID, &cf.Path, &cf.Region, &cf.SHA256, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get capture by sha256: %w", err)
	}
	if cf.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("capture %d: created_at: %w", cf.ID, err)
	}
	return &cf, nil
}

// InsertAbility archives a converted ability of a capture.
func (s *SQLiteStore) InsertAbility(ctx context.Context, row *model.AbilityRow) (int64, error) {
	return insertAbility(ctx, s.db, row)
}

func insertAbility(ctx context.Context, q querier, row *model.AbilityRow) (int64, error) {
	if row.Ability == nil {
		return 0, fmt.Errorf("insert ability: missing record")
	}
	record, err := json.Marshal(row.Ability)
	if err != nil {
		return 0, fmt.Errorf("insert ability %d: %w", row.Ability.ID, err)
	}

	const query = `
		INSERT INTO abilities (capture_id, owner, slot, ability_id, name, school, action_class, effects, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := q.ExecContext(ctx, query,
		row.CaptureID,
		row.Owner,
		row.Slot,
		row.Ability.ID,
		row.Ability.Name,
		nullString(row.Ability.School),
		nullString(row.Ability.ActionClass),
		nullString(row.Ability.Effects),
		string(record),
	)
	if err != nil {
		return 0, fmt.Errorf("insert ability %d: %w", row.Ability.ID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert ability %d: %w", row.Ability.ID, err)
	}
	row.ID = id
	return id, nil
}

// AbilitiesByAbilityID returns every archived conversion of an ability,
// oldest first.
func (s *SQLiteStore) AbilitiesByAbilityID(ctx context.Context, abilityID int) ([]*model.AbilityRow, error) {
	const query = `
		SELECT id, capture_id, owner, slot, record_json
		FROM abilities
		WHERE ability_id = ?
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, abilityID)
	if err != nil {
		return nil, fmt.Errorf("query abilities: %w", err)
	}
	defer rows.Close()

	var list []*model.AbilityRow
	for rows.Next() {
		var row model.AbilityRow
		var record string
		if err := rows.Scan(&row.ID, &row.CaptureID, &row.Owner, &row.Slot, &record); err != nil {
			return nil, err
		}
		row.Ability = &model.Ability{}
		if err := json.Unmarshal([]byte(record), row.Ability); err != nil {
			return nil, fmt.Errorf("ability row %d: %w", row.ID, err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// TableStats returns row counts for all tables.
func (s *SQLiteStore) TableStats(ctx context.Context) (map[string]int64, error) {
	tables := []string{
		"captures",
		"abilities",
	}

	stats := make(map[string]int64, len(tables))
	for _, table := range tables {
		var count int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats[table] = count
	}

	return stats, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
