package lookup

import "tms/internal/lookup/models"

// Tables are built once at package load and never written again.

var searchTypeOptions = models.MustOptionSet(
	models.Option[models.SearchType]{Key: "EMAIL", Title: "Email", Value: models.SearchTypeEmail},
	models.Option[models.SearchType]{Key: "FIRST_NAME", Title: "First Name", Value: models.SearchTypeFirstName},
	models.Option[models.SearchType]{Key: "LAST_NAME", Title: "Last Name", Value: models.SearchTypeLastName},
)

var ministries = models.MustMinistryList(
	"Agriculture and Food",
	"Attorney General",
	"BC Elections",
	"BC Public Service Agency",
	"Children and Family Development",
	"Citizens' Services",
	"Compliance and Enforcement Collaborative",
	"Corporate Information and Records Management Office",
	"Crown Agencies and Board Resourcing Office",
	"Education and Child Care",
	"Emergency Management and Climate Readiness",
	"Energy and Climate Solutions",
	"Environment and Parks",
	"Finance",
	"Forests",
	"Government Communications and Public Engagement",
	"Health",
	"Housing and Municipal Affairs",
	"Indigenous Relations and Reconciliation",
	"Infrastructure",
	"Intergovernmental Relations Secretariat",
	"Jobs, Economic Development and Innovation",
	"Labour",
	"Mining and Critical Materials",
	"Office of the Chief Information Officer",
	"Office of the Comptroller General",
	"Office of the Premier",
	"Post-Secondary Education and Future Skills",
	"Provincial Treasury",
	"Public Safety and Solicitor General",
	"Public Sector Employers' Council Secretariat",
	"Social Development and Poverty Reduction",
	"Tourism, Arts, Culture and Sport",
	"Transportation and Transit",
	"Treasury Board Staff",
	"Water, Land and Resource Stewardship",
)

var roleOptions = models.MustOptionSet(
	models.Option[models.Role]{Key: "OPERATIONS_ADMIN", Title: "Operations Admin", Value: models.RoleOperationsAdmin},
	models.Option[models.Role]{Key: "SERVICE_USER", Title: "Service User", Value: models.RoleServiceUser},
	models.Option[models.Role]{Key: "TENANT_OWNER", Title: "Tenant Owner", Value: models.RoleTenantOwner},
	models.Option[models.Role]{Key: "USER_ADMIN", Title: "User Admin", Value: models.RoleUserAdmin},
)

// Titles are independent literals; "Approved" is not derived from "APPROVED".
var requestStatusOptions = models.MustOptionSet(
	models.Option[models.RequestStatus]{Key: "APPROVED", Title: "Approved", Value: models.RequestStatusApproved},
	models.Option[models.RequestStatus]{Key: "NEW", Title: "New", Value: models.RequestStatusNew},
	models.Option[models.RequestStatus]{Key: "REJECTED", Title: "Rejected", Value: models.RequestStatusRejected},
)
