package document

import "time"

type Category string

const (
	CategoryPersonal        Category = "Personal"
	CategoryPayroll         Category = "Payroll"
	CategoryCompanyPolicies Category = "Company Policies"
	CategoryCertificates    Category = "Certificates"
	CategoryForms           Category = "Forms"
	CategoryIT              Category = "IT"
)

// Categories in display order.
var Categories = []Category{
	CategoryPersonal,
	CategoryPayroll,
	CategoryCompanyPolicies,
	CategoryCertificates,
	CategoryForms,
	CategoryIT,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Document struct {
	ID         string
	EmployeeID string
	Category   Category
	Title      string
	FilePath   string
	// ViewOnly documents are shown but not offered for download.
	ViewOnly  bool
	CreatedAt time.Time
}
