// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/disease-registry/models"
)

// --- User -------------------------------------------------------------------

const userColumns = `email, name, surname, salary, phone, cname`

func (s *Session) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if _, err := s.exec(ctx, `
		INSERT INTO users (email, name, surname, salary, phone, cname)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Email, u.Name, u.Surname, u.Salary, u.Phone, u.CName); err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return s.GetUser(ctx, u.Email)
}

func (s *Session) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, s, `SELECT `+userColumns+` FROM users`)
}

func (s *Session) GetUser(ctx context.Context, email string) (models.User, error) {
	return get[models.User](ctx, s, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?
	`, email)
}

func (s *Session) UpdateUser(ctx context.Context, email string, patch models.UserUpdate) (models.User, error) {
	u, err := s.GetUser(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	patch.Apply(&u)

	if _, err := s.exec(ctx, `
		UPDATE users
		SET name = ?, surname = ?, salary = ?, phone = ?, cname = ?
		WHERE email = ?
	`, u.Name, u.Surname, u.Salary, u.Phone, u.CName, email); err != nil {
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUser(ctx, email)
}

func (s *Session) DeleteUser(ctx context.Context, email string) (models.User, error) {
	u, err := s.GetUser(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM users WHERE email = ?`, email); err != nil {
		return models.User{}, fmt.Errorf("failed to delete user: %w", err)
	}
	return u, nil
}

// GetUserRole reports which subtype, if any, the user holds.
func (s *Session) GetUserRole(ctx context.Context, email string) (models.Role, error) {
	type roleRow struct {
		Degree     sql.NullString `db:"degree"`
		Department sql.NullString `db:"department"`
	}

	row, err := get[roleRow](ctx, s, `
		SELECT d.degree, p.department
		FROM users u
		LEFT JOIN doctor d ON d.email = u.email
		LEFT JOIN publicservant p ON p.email = u.email
		WHERE u.email = ?
	`, email)
	if err != nil {
		return models.Role{}, err
	}

	switch {
	case row.Degree.Valid && row.Department.Valid:
		return models.Role{}, fmt.Errorf("user %s is both doctor and public servant: %w", email, ErrRoleConflict)
	case row.Degree.Valid:
		return models.DoctorRole(row.Degree.String), nil
	case row.Department.Valid:
		return models.PublicServantRole(row.Department.String), nil
	}
	return models.NoRole(), nil
}

func (s *Session) GetUserProfile(ctx context.Context, email string) (models.UserProfile, error) {
	u, err := s.GetUser(ctx, email)
	if err != nil {
		return models.UserProfile{}, err
	}
	role, err := s.GetUserRole(ctx, email)
	if err != nil {
		return models.UserProfile{}, err
	}
	return models.UserProfile{User: u, Role: role}, nil
}

// --- Doctor -----------------------------------------------------------------

func (s *Session) CreateDoctor(ctx context.Context, d models.Doctor) (models.Doctor, error) {
	taken, err := s.exists(ctx, `SELECT COUNT(*) FROM publicservant WHERE email = ?`, d.Email)
	if err != nil {
		return models.Doctor{}, err
	}
	if taken {
		return models.Doctor{}, fmt.Errorf("%s is a public servant: %w", d.Email, ErrRoleConflict)
	}

	if _, err := s.exec(ctx, `
		INSERT INTO doctor (email, degree)
		VALUES (?, ?)
	`, d.Email, d.Degree); err != nil {
		return models.Doctor{}, fmt.Errorf("failed to insert doctor: %w", err)
	}
	return s.GetDoctor(ctx, d.Email)
}

func (s *Session) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return list[models.Doctor](ctx, s, `SELECT email, degree FROM doctor`)
}

func (s *Session) GetDoctor(ctx context.Context, email string) (models.Doctor, error) {
	return get[models.Doctor](ctx, s, `
		SELECT email, degree
		FROM doctor
		WHERE email = ?
	`, email)
}

func (s *Session) UpdateDoctor(ctx context.Context, email string, patch models.DoctorUpdate) (models.Doctor, error) {
	d, err := s.GetDoctor(ctx, email)
	if err != nil {
		return models.Doctor{}, err
	}
	patch.Apply(&d)

	if _, err := s.exec(ctx, `
		UPDATE doctor
		SET degree = ?
		WHERE email = ?
	`, d.Degree, email); err != nil {
		return models.Doctor{}, fmt.Errorf("failed to update doctor: %w", err)
	}
	return s.GetDoctor(ctx, email)
}

// DeleteDoctor also removes the doctor's specializations, which only
// exist for doctors.
func (s *Session) DeleteDoctor(ctx context.Context, email string) (models.Doctor, error) {
	d, err := s.GetDoctor(ctx, email)
	if err != nil {
		return models.Doctor{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM specialize WHERE email = ?`, email); err != nil {
		return models.Doctor{}, fmt.Errorf("failed to delete specializations: %w", err)
	}
	if _, err := s.exec(ctx, `DELETE FROM doctor WHERE email = ?`, email); err != nil {
		return models.Doctor{}, fmt.Errorf("failed to delete doctor: %w", err)
	}
	return d, nil
}

// --- PublicServant ----------------------------------------------------------

func (s *Session) CreatePublicServant(ctx context.Context, p models.PublicServant) (models.PublicServant, error) {
	taken, err := s.exists(ctx, `SELECT COUNT(*) FROM doctor WHERE email = ?`, p.Email)
	if err != nil {
		return models.PublicServant{}, err
	}
	if taken {
		return models.PublicServant{}, fmt.Errorf("%s is a doctor: %w", p.Email, ErrRoleConflict)
	}

	if _, err := s.exec(ctx, `
		INSERT INTO publicservant (email, department)
		VALUES (?, ?)
	`, p.Email, p.Department); err != nil {
		return models.PublicServant{}, fmt.Errorf("failed to insert public servant: %w", err)
	}
	return s.GetPublicServant(ctx, p.Email)
}

func (s *Session) ListPublicServants(ctx context.Context) ([]models.PublicServant, error) {
	return list[models.PublicServant](ctx, s, `SELECT email, department FROM publicservant`)
}

func (s *Session) GetPublicServant(ctx context.Context, email string) (models.PublicServant, error) {
	return get[models.PublicServant](ctx, s, `
		SELECT email, department
		FROM publicservant
		WHERE email = ?
	`, email)
}

func (s *Session) UpdatePublicServant(ctx context.Context, email string, patch models.PublicServantUpdate) (models.PublicServant, error) {
	p, err := s.GetPublicServant(ctx, email)
	if err != nil {
		return models.PublicServant{}, err
	}
	patch.Apply(&p)

	if _, err := s.exec(ctx, `
		UPDATE publicservant
		SET department = ?
		WHERE email = ?
	`, p.Department, email); err != nil {
		return models.PublicServant{}, fmt.Errorf("failed to update public servant: %w", err)
	}
	return s.GetPublicServant(ctx, email)
}

func (s *Session) DeletePublicServant(ctx context.Context, email string) (models.PublicServant, error) {
	p, err := s.GetPublicServant(ctx, email)
	if err != nil {
		return models.PublicServant{}, err
	}
	if _, err := s.exec(ctx, `DELETE FROM publicservant WHERE email = ?`, email); err != nil {
		return models.PublicServant{}, fmt.Errorf("failed to delete public servant: %w", err)
	}
	return p, nil
}

// --- Specialize -------------------------------------------------------------

// CreateSpecialize links a doctor to a disease type. Users who are not
// doctors are refused with ErrRoleRequired.
func (s *Session) CreateSpecialize(ctx context.Context, sp models.Specialize) (models.Specialize, error) {
	if _, err := s.GetDoctor(ctx, sp.Email); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Specialize{}, fmt.Errorf("%s is not a doctor: %w", sp.Email, ErrRoleRequired)
		}
		return models.Specialize{}, err
	}

	if _, err := s.exec(ctx, `
		INSERT INTO specialize (id, email)
		VALUES (?, ?)
	`, sp.ID, sp.Email); err != nil {
		return models.Specialize{}, fmt.Errorf("failed to insert specialization: %w", err)
	}
	return s.GetSpecialize(ctx, sp.ID, sp.Email)
}

func (s *Session) ListSpecializations(ctx context.Context) ([]models.Specialize, error) {
	return list[models.Specialize](ctx, s, `SELECT id, email FROM specialize`)
}

func (s *Session) GetSpecialize(ctx context.Context, id int64, email string) (models.Specialize, error) {
	return get[models.Specialize](ctx, s, `
		SELECT id, email
		FROM specialize
		WHERE id = ? AND email = ?
	`, id, email)
}

func (s *Session) DeleteSpecialize(ctx context.Context, id int64, email string) (models.Specialize, error) {
	sp, err := s.GetSpecialize(ctx, id, email)
	if err != nil {
		return models.Specialize{}, err
	}
	if _, err := s.exec(ctx, `
		DELETE FROM specialize
		WHERE id = ? AND email = ?
	`, id, email); err != nil {
		return models.Specialize{}, fmt.Errorf("failed to delete specialization: %w", err)
	}
	return sp, nil
}
