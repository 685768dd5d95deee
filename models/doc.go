// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the registry.

# Domain Types

One struct per table, tagged for both sqlx (db) and JSON:

  - Country, DiseaseType, Disease, Discover
  - User, Doctor, PublicServant, Specialize
  - Record

Date is a calendar day that scans from either time.Time or YYYY-MM-DD text
and marshals to YYYY-MM-DD.

# Roles

Doctor and PublicServant are disjoint subtypes of User. Role is the tagged
view of that choice:

	role := models.DoctorRole("MD")    // Kind == "doctor"
	role := models.NoRole()            // Kind == "none"

UserProfile pairs a User with its Role.

# Request Types

Create requests (CreateUserRequest, CreateRecordRequest, ...) carry a Validate
method reporting the first missing required field. Required numbers are
pointers so a missing value is distinguishable from zero.

# Update Types

Update types (UserUpdate, RecordUpdate, ...) hold only optional fields. Apply
overlays the non-nil ones onto an entity:

	salary := int64(2000)
	models.UserUpdate{Salary: &salary}.Apply(&user)

Fields left nil keep their stored value.

# Response Types

  - ErrorResponse: error, message
  - MessageResponse: message
*/
package models
