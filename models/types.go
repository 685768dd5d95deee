// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Domain types (one per table)

type Country struct {
	CName      string `db:"cname" json:"cname"`
	Population int64  `db:"population" json:"population"`
}

type DiseaseType struct {
	ID          int64  `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
}

// The disease table names its disease type column "id".
type Disease struct {
	DiseaseCode   string `db:"disease_code" json:"disease_code"`
	Pathogen      string `db:"pathogen" json:"pathogen"`
	Description   string `db:"description" json:"description"`
	DiseaseTypeID *int64 `db:"id" json:"disease_type_id,omitempty"`
}

// Discover records where and when a disease was first encountered.
type Discover struct {
	CName        string `db:"cname" json:"cname"`
	DiseaseCode  string `db:"disease_code" json:"disease_code"`
	FirstEncDate Date   `db:"first_enc_date" json:"first_enc_date"`
}

type User struct {
	Email   string `db:"email" json:"email"`
	Name    string `db:"name" json:"name"`
	Surname string `db:"surname" json:"surname"`
	Salary  int64  `db:"salary" json:"salary"`
	Phone   string `db:"phone" json:"phone"`
	CName   string `db:"cname" json:"cname"`
}

type Doctor struct {
	Email  string `db:"email" json:"email"`
	Degree string `db:"degree" json:"degree"`
}

type PublicServant struct {
	Email      string `db:"email" json:"email"`
	Department string `db:"department" json:"department"`
}

// Specialize links a doctor to a disease type.
type Specialize struct {
	ID    int64  `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
}

// Record is one reported statistic. Its primary key is email alone.
type Record struct {
	Email         string `db:"email" json:"email"`
	CName         string `db:"cname" json:"cname"`
	DiseaseCode   string `db:"disease_code" json:"disease_code"`
	TotalDeaths   int64  `db:"total_deaths" json:"total_deaths"`
	TotalPatients int64  `db:"total_patients" json:"total_patients"`
}

// Role constants
const (
	RoleNone          = "none"
	RoleDoctor        = "doctor"
	RolePublicServant = "public_servant"
)

// Role is the subtype a user holds. Kind selects which of the other fields
// carries meaning; a user is never both a doctor and a public servant.
type Role struct {
	Kind       string `json:"kind"`
	Degree     string `json:"degree,omitempty"`
	Department string `json:"department,omitempty"`
}

func NoRole() Role {
	return Role{Kind: RoleNone}
}

func DoctorRole(degree string) Role {
	return Role{Kind: RoleDoctor, Degree: degree}
}

func PublicServantRole(department string) Role {
	return Role{Kind: RolePublicServant, Department: department}
}

type UserProfile struct {
	User
	Role Role `json:"role"`
}

// Response types

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
