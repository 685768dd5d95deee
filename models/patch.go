// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Update types
//
// A nil field means "leave as is". Apply copies every non-nil field onto the
// stored entity and touches nothing else, so an update is always a patch.

type CountryUpdate struct {
	Population *int64 `json:"population"`
}

func (u CountryUpdate) Apply(c *Country) {
	if u.Population != nil {
		c.Population = *u.Population
	}
}

type DiseaseTypeUpdate struct {
	Description *string `json:"description"`
}

func (u DiseaseTypeUpdate) Apply(t *DiseaseType) {
	if u.Description != nil {
		t.Description = *u.Description
	}
}

type DiseaseUpdate struct {
	Pathogen      *string `json:"pathogen"`
	Description   *string `json:"description"`
	DiseaseTypeID *int64  `json:"disease_type_id"`
}

func (u DiseaseUpdate) Apply(d *Disease) {
	if u.Pathogen != nil {
		d.Pathogen = *u.Pathogen
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.DiseaseTypeID != nil {
		id := *u.DiseaseTypeID
		d.DiseaseTypeID = &id
	}
}

type DiscoverUpdate struct {
	FirstEncDate *Date `json:"first_enc_date"`
}

func (u DiscoverUpdate) Apply(d *Discover) {
	if u.FirstEncDate != nil {
		d.FirstEncDate = *u.FirstEncDate
	}
}

type UserUpdate struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Salary  *int64  `json:"salary"`
	Phone   *string `json:"phone"`
	CName   *string `json:"cname"`
}

func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Surname != nil {
		user.Surname = *u.Surname
	}
	if u.Salary != nil {
		user.Salary = *u.Salary
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.CName != nil {
		user.CName = *u.CName
	}
}

type DoctorUpdate struct {
	Degree *string `json:"degree"`
}

func (u DoctorUpdate) Apply(d *Doctor) {
	if u.Degree != nil {
		d.Degree = *u.Degree
	}
}

type PublicServantUpdate struct {
	Department *string `json:"department"`
}

func (u PublicServantUpdate) Apply(p *PublicServant) {
	if u.Department != nil {
		p.Department = *u.Department
	}
}

// RecordUpdate may move a record to another email, since email is its key.
type RecordUpdate struct {
	Email         *string `json:"email"`
	CName         *string `json:"cname"`
	DiseaseCode   *string `json:"disease_code"`
	TotalDeaths   *int64  `json:"total_deaths"`
	TotalPatients *int64  `json:"total_patients"`
}

func (u RecordUpdate) Apply(r *Record) {
	if u.Email != nil {
		r.Email = *u.Email
	}
	if u.CName != nil {
		r.CName = *u.CName
	}
	if u.DiseaseCode != nil {
		r.DiseaseCode = *u.DiseaseCode
	}
	if u.TotalDeaths != nil {
		r.TotalDeaths = *u.TotalDeaths
	}
	if u.TotalPatients != nil {
		r.TotalPatients = *u.TotalPatients
	}
}
