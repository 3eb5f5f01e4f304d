package lookup

import "tms/internal/lookup/models"

// Set names used in exports and metric labels.
const (
	SetSearchTypes     = "search_types"
	SetMinistries      = "ministries"
	SetRoles           = "roles"
	SetRequestStatuses = "request_statuses"
)

// CatalogView bundles every table for export.
type CatalogView struct {
	SearchTypes     models.OptionSet[models.SearchType]    `json:"search_types"`
	Ministries      models.MinistryList                    `json:"ministries"`
	Roles           models.OptionSet[models.Role]          `json:"roles"`
	RequestStatuses models.OptionSet[models.RequestStatus] `json:"request_statuses"`
}

// Catalog returns all tables in one value.
func Catalog() CatalogView {
	return CatalogView{
		SearchTypes:     searchTypeOptions,
		Ministries:      ministries,
		Roles:           roleOptions,
		RequestStatuses: requestStatusOptions,
	}
}

// Sizes returns the entry count of each table keyed by set name.
func (c CatalogView) Sizes() map[string]int {
	return map[string]int{
		SetSearchTypes:     c.SearchTypes.Len(),
		SetMinistries:      c.Ministries.Len(),
		SetRoles:           c.Roles.Len(),
		SetRequestStatuses: c.RequestStatuses.Len(),
	}
}
