// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Request types
//
// Create requests mirror the entity but use pointers for required numbers so
// that a missing field can be told apart from zero.

type CreateCountryRequest struct {
	CName      string `json:"cname"`
	Population *int64 `json:"population"`
}

func (r CreateCountryRequest) Validate() error {
	if r.CName == "" {
		return errors.New("cname is required")
	}
	if r.Population == nil {
		return errors.New("population is required")
	}
	return nil
}

func (r CreateCountryRequest) Country() Country {
	return Country{CName: r.CName, Population: *r.Population}
}

type CreateDiseaseTypeRequest struct {
	ID          *int64 `json:"id"`
	Description string `json:"description"`
}

func (r CreateDiseaseTypeRequest) Validate() error {
	if r.ID == nil {
		return errors.New("id is required")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

func (r CreateDiseaseTypeRequest) DiseaseType() DiseaseType {
	return DiseaseType{ID: *r.ID, Description: r.Description}
}

type CreateDiseaseRequest struct {
	DiseaseCode   string `json:"disease_code"`
	Pathogen      string `json:"pathogen"`
	Description   string `json:"description"`
	DiseaseTypeID *int64 `json:"disease_type_id"`
}

func (r CreateDiseaseRequest) Validate() error {
	switch {
	case r.DiseaseCode == "":
		return errors.New("disease_code is required")
	case r.Pathogen == "":
		return errors.New("pathogen is required")
	case r.Description == "":
		return errors.New("description is required")
	}
	return nil
}

func (r CreateDiseaseRequest) Disease() Disease {
	return Disease{
		DiseaseCode:   r.DiseaseCode,
		Pathogen:      r.Pathogen,
		Description:   r.Description,
		DiseaseTypeID: r.DiseaseTypeID,
	}
}

type CreateDiscoverRequest struct {
	CName        string `json:"cname"`
	DiseaseCode  string `json:"disease_code"`
	FirstEncDate *Date  `json:"first_enc_date"`
}

func (r CreateDiscoverRequest) Validate() error {
	switch {
	case r.CName == "":
		return errors.New("cname is required")
	case r.DiseaseCode == "":
		return errors.New("disease_code is required")
	case r.FirstEncDate == nil:
		return errors.New("first_enc_date is required")
	}
	return nil
}

func (r CreateDiscoverRequest) Discover() Discover {
	return Discover{CName: r.CName, DiseaseCode: r.DiseaseCode, FirstEncDate: *r.FirstEncDate}
}

type CreateUserRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Salary  *int64 `json:"salary"`
	Phone   string `json:"phone"`
	CName   string `json:"cname"`
}

func (r CreateUserRequest) Validate() error {
	switch {
	case r.Email == "":
		return errors.New("email is required")
	case r.Name == "":
		return errors.New("name is required")
	case r.Surname == "":
		return errors.New("surname is required")
	case r.Salary == nil:
		return errors.New("salary is required")
	case r.Phone == "":
		return errors.New("phone is required")
	case r.CName == "":
		return errors.New("cname is required")
	}
	return nil
}

func (r CreateUserRequest) User() User {
	return User{
		Email:   r.Email,
		Name:    r.Name,
		Surname: r.Surname,
		Salary:  *r.Salary,
		Phone:   r.Phone,
		CName:   r.CName,
	}
}

type CreateDoctorRequest struct {
	Email  string `json:"email"`
	Degree string `json:"degree"`
}

func (r CreateDoctorRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Degree == "" {
		return errors.New("degree is required")
	}
	return nil
}

type CreatePublicServantRequest struct {
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r CreatePublicServantRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Department == "" {
		return errors.New("department is required")
	}
	return nil
}

type CreateSpecializeRequest struct {
	ID    *int64 `json:"id"`
	Email string `json:"email"`
}

func (r CreateSpecializeRequest) Validate() error {
	if r.ID == nil {
		return errors.New("id is required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type CreateRecordRequest struct {
	Email         string `json:"email"`
	CName         string `json:"cname"`
	DiseaseCode   string `json:"disease_code"`
	TotalDeaths   *int64 `json:"total_deaths"`
	TotalPatients *int64 `json:"total_patients"`
}

func (r CreateRecordRequest) Validate() error {
	switch {
	case r.Email == "":
		return errors.New("email is required")
	case r.CName == "":
		return errors.New("cname is required")
	case r.DiseaseCode == "":
		return errors.New("disease_code is required")
	case r.TotalDeaths == nil:
		return errors.New("total_deaths is required")
	case r.TotalPatients == nil:
		return errors.New("total_patients is required")
	}
	return nil
}

func (r CreateRecordRequest) Record() Record {
	return Record{
		Email:         r.Email,
		CName:         r.CName,
		DiseaseCode:   r.DiseaseCode,
		TotalDeaths:   *r.TotalDeaths,
		TotalPatients: *r.TotalPatients,
	}
}
