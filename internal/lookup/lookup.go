// Package lookup is the read-only catalog behind Tenant Management form
// controls: IDIR search types, the ministry directory, TMS roles and tenant
// request statuses.
//
// Every accessor is safe for concurrent use. The tables are immutable, so
// no locking is involved and callers cannot alter what later reads observe.
package lookup

import (
	"tms/internal/lookup/models"
	dErrors "tms/pkg/domain-errors"
)

// SearchTypeOptions returns the IDIR search types: Email, First Name, Last Name.
func SearchTypeOptions() models.OptionSet[models.SearchType] {
	return searchTypeOptions
}

// Ministries returns the ministries and organizations a tenant can belong to,
// in display order.
func Ministries() models.MinistryList {
	return ministries
}

// RoleOptions returns the Tenant Management roles.
func RoleOptions() models.OptionSet[models.Role] {
	return roleOptions
}

// RequestStatusOptions returns the tenant request statuses.
func RequestStatusOptions() models.OptionSet[models.RequestStatus] {
	return requestStatusOptions
}

// ParseMinistry constructs a Ministry from external input. Names match
// exactly, including punctuation.
//
// Errors: CodeInvalidInput when s is empty or not in the directory.
func ParseMinistry(s string) (models.Ministry, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "ministry cannot be empty")
	}
	m := models.Ministry(s)
	if !ministries.Contains(m) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown ministry")
	}
	return m, nil
}
