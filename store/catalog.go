// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/disease-registry/models"
)

// --- Country ----------------------------------------------------------------

func (s *Session) CreateCountry(ctx context.Context, c models.Country) (models.Country, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO country (cname, population)
		VALUES (?, ?)
	`, c.CName, c.Population); err != nil {
		return models.Country{}, fmt.Errorf("failed to insert country: %w", err)
	}
	return s.GetCountry(ctx, c.CName)
}

func (s *Session) ListCountries(ctx context.Context) ([]models.Country, error) {
	return list[models.Country](ctx, s, `SELECT cname, population FROM country`)
}

func (s *Session) GetCountry(ctx context.Context, cname string) (models.Country, error) {
	return get[models.Country](ctx, s, `
		SELECT cname, population
		FROM country
		WHERE cname = ?
	`, cname)
}

func (s *Session) UpdateCountry(ctx context.Context, cname string, patch models.CountryUpdate) (models.Country, error) {
	c, err := s.GetCountry(ctx, cname)
	if err != nil {
		return models.Country{}, err
	}
	patch.Apply(&c)

	if _, err := s.exec(ctx, `
		UPDATE country
		SET population = ?
		WHERE cname = ?
	`, c.Population, cname); err != nil {
		return models.Country{}, fmt.Errorf("failed to update country: %w", err)
	}
	return s.GetCountry(ctx, cname)
}

func (s *Session) DeleteCountry(ctx context.Context, cname string) (models.Country, error) {
	c, err := s.GetCountry(ctx, cname)
	if err != nil {
		return models.Country{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM country WHERE cname = ?`, cname); err != nil {
		return models.Country{}, fmt.Errorf("failed to delete country: %w", err)
	}
	return c, nil
}

// --- DiseaseType ------------------------------------------------------------

func (s *Session) CreateDiseaseType(ctx context.Context, t models.DiseaseType) (models.DiseaseType, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO diseasetype (id, description)
		VALUES (?, ?)
	`, t.ID, t.Description); err != nil {
		return models.DiseaseType{}, fmt.Errorf("failed to insert disease type: %w", err)
	}
	return s.GetDiseaseType(ctx, t.ID)
}

func (s *Session) ListDiseaseTypes(ctx context.Context) ([]models.DiseaseType, error) {
	return list[models.DiseaseType](ctx, s, `SELECT id, description FROM diseasetype`)
}

func (s *Session) GetDiseaseType(ctx context.Context, id int64) (models.DiseaseType, error) {
	return get[models.DiseaseType](ctx, s, `
		SELECT id, description
		FROM diseasetype
		WHERE id = ?
	`, id)
}

func (s *Session) UpdateDiseaseType(ctx context.Context, id int64, patch models.DiseaseTypeUpdate) (models.DiseaseType, error) {
	t, err := s.GetDiseaseType(ctx, id)
	if err != nil {
		return models.DiseaseType{}, err
	}
	patch.Apply(&t)

	if _, err := s.exec(ctx, `
		UPDATE diseasetype
		SET description = ?
		WHERE id = ?
	`, t.Description, id); err != nil {
		return models.DiseaseType{}, fmt.Errorf("failed to update disease type: %w", err)
	}
	return s.GetDiseaseType(ctx, id)
}

func (s *Session) DeleteDiseaseType(ctx context.Context, id int64) (models.DiseaseType, error) {
	t, err := s.GetDiseaseType(ctx, id)
	if err != nil {
		return models.DiseaseType{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM diseasetype WHERE id = ?`, id); err != nil {
		return models.DiseaseType{}, fmt.Errorf("failed to delete disease type: %w", err)
	}
	return t, nil
}

// --- Disease ----------------------------------------------------------------

const diseaseColumns = `disease_code, pathogen, description, id`

func (s *Session) CreateDisease(ctx context.Context, d models.Disease) (models.Disease, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO disease (disease_code, pathogen, description, id)
		VALUES (?, ?, ?, ?)
	`, d.DiseaseCode, d.Pathogen, d.Description, d.DiseaseTypeID); err != nil {
		return models.Disease{}, fmt.Errorf("failed to insert disease: %w", err)
	}
	return s.GetDisease(ctx, d.DiseaseCode)
}

func (s *Session) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	return list[models.Disease](ctx, s, `SELECT `+diseaseColumns+` FROM disease`)
}

func (s *Session) GetDisease(ctx context.Context, code string) (models.Disease, error) {
	return get[models.Disease](ctx, s, `
		SELECT `+diseaseColumns+`
		FROM disease
		WHERE disease_code = ?
	`, code)
}

func (s *Session) UpdateDisease(ctx context.Context, code string, patch models.DiseaseUpdate) (models.Disease, error) {
	d, err := s.GetDisease(ctx, code)
	if err != nil {
		return models.Disease{}, err
	}
	patch.Apply(&d)

	if _, err := s.exec(ctx, `
		UPDATE disease
		SET pathogen = ?, description = ?, id = ?
		WHERE disease_code = ?
	`, d.Pathogen, d.Description, d.DiseaseTypeID, code); err != nil {
		return models.Disease{}, fmt.Errorf("failed to update disease: %w", err)
	}
	return s.GetDisease(ctx, code)
}

func (s *Session) DeleteDisease(ctx context.Context, code string) (models.Disease, error) {
	d, err := s.GetDisease(ctx, code)
	if err != nil {
		return models.Disease{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM disease WHERE disease_code = ?`, code); err != nil {
		return models.Disease{}, fmt.Errorf("failed to delete disease: %w", err)
	}
	return d, nil
}

// --- Discover ---------------------------------------------------------------

func (s *Session) CreateDiscover(ctx context.Context, d models.Discover) (models.Discover, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO discover (cname, disease_code, first_enc_date)
		VALUES (?, ?, ?)
	`, d.CName, d.DiseaseCode, d.FirstEncDate); err != nil {
		return models.Discover{}, fmt.Errorf("failed to insert discovery: %w", err)
	}
	return s.GetDiscover(ctx, d.CName, d.DiseaseCode)
}

func (s *Session) ListDiscoveries(ctx context.Context) ([]models.Discover, error) {
	return list[models.Discover](ctx, s, `SELECT cname, disease_code, first_enc_date FROM discover`)
}

func (s *Session) GetDiscover(ctx context.Context, cname, code string) (models.Discover, error) {
	return get[models.Discover](ctx, s, `
		SELECT cname, disease_code, first_enc_date
		FROM discover
		WHERE cname = ? AND disease_code = ?
	`, cname, code)
}

func (s *Session) UpdateDiscover(ctx context.Context, cname, code string, patch models.DiscoverUpdate) (models.Discover, error) {
	d, err := s.GetDiscover(ctx, cname, code)
	if err != nil {
		return models.Discover{}, err
	}
	patch.Apply(&d)

	if _, err := s.exec(ctx, `
		UPDATE discover
		SET first_enc_date = ?
		WHERE cname = ? AND disease_code = ?
	`, d.FirstEncDate, cname, code); err != nil {
		return models.Discover{}, fmt.Errorf("failed to update discovery: %w", err)
	}
	return s.GetDiscover(ctx, cname, code)
}

func (s *Session) DeleteDiscover(ctx context.Context, cname, code string) (models.Discover, error) {
	d, err := s.GetDiscover(ctx, cname, code)
	if err != nil {
		return models.Discover{}, err
	}
	if _, err := s.exec(ctx, `
		DELETE FROM discover
		WHERE cname = ? AND disease_code = ?
	`, cname, code); err != nil {
		return models.Discover{}, fmt.Errorf("failed to delete discovery: %w", err)
	}
	return d, nil
}
