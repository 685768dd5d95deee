// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/disease-registry/models"
)

const recordColumns = `email, cname, disease_code, total_deaths, total_patients`

func (s *Session) CreateRecord(ctx context.Context, r models.Record) (models.Record, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO record (email, cname, disease_code, total_deaths, total_patients)
		VALUES (?, ?, ?, ?, ?)
	`, r.Email, r.CName, r.DiseaseCode, r.TotalDeaths, r.TotalPatients); err != nil {
		return models.Record{}, fmt.Errorf("failed to insert record: %w", err)
	}
	return s.GetRecord(ctx, r.Email)
}

func (s *Session) ListRecords(ctx context.Context) ([]models.Record, error) {
	return list[models.Record](ctx, s, `SELECT `+recordColumns+` FROM record`)
}

func (s *Session) GetRecord(ctx context.Context, email string) (models.Record, error) {
	return get[models.Record](ctx, s, `
		SELECT `+recordColumns+`
		FROM record
		WHERE email = ?
	`, email)
}

// ListRecordsByEmail returns a slice so callers do not depend on email
// being the whole key.
func (s *Session) ListRecordsByEmail(ctx context.Context, email string) ([]models.Record, error) {
	return list[models.Record](ctx, s, `
		SELECT `+recordColumns+`
		FROM record
		WHERE email = ?
	`, email)
}

func (s *Session) ListRecordsByDisease(ctx context.Context, code string) ([]models.Record, error) {
	return list[models.Record](ctx, s, `
		SELECT `+recordColumns+`
		FROM record
		WHERE disease_code = ?
	`, code)
}

// UpdateRecord may change the record's email, in which case the updated
// record is returned under its new key.
func (s *Session) UpdateRecord(ctx context.Context, email string, patch models.RecordUpdate) (models.Record, error) {
	r, err := s.GetRecord(ctx, email)
	if err != nil {
		return models.Record{}, err
	}
	patch.Apply(&r)

	if _, err := s.exec(ctx, `
		UPDATE record
		SET email = ?, cname = ?, disease_code = ?, total_deaths = ?, total_patients = ?
		WHERE email = ?
	`, r.Email, r.CName, r.DiseaseCode, r.TotalDeaths, r.TotalPatients, email); err != nil {
		return models.Record{}, fmt.Errorf("failed to update record: %w", err)
	}
	return s.GetRecord(ctx, r.Email)
}

func (s *Session) DeleteRecord(ctx context.Context, email string) (models.Record, error) {
	r, err := s.GetRecord(ctx, email)
	if err != nil {
		return models.Record{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM record WHERE email = ?`, email); err != nil {
		return models.Record{}, fmt.Errorf("failed to delete record: %w", err)
	}
	return r, nil
}
