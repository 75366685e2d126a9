package document

import (
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

// UploadDocumentRequest is decoded from a multipart form; the file part is
// passed separately.
type UploadDocumentRequest struct {
	EmployeeID string
	Category   string
	Title      string
	ViewOnly   bool
	Filename   string
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if !Category(r.Category).Valid() {
		errs.Add("category", "category must be one of: Personal, Payroll, Company Policies, Certificates, Forms, IT")
	}
	if r.Title == "" {
		errs.Add("title", "title is required")
	} else if len(r.Title) > 150 {
		errs.Add("title", "title must not exceed 150 characters")
	}
	if validator.IsEmpty(r.Filename) {
		errs.Add("file", "file is required")
	}

	return errs.OrNil()
}

type DocumentResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	ViewOnly  bool   `json:"view_only"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
}

func ToResponse(d Document, url string) DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Category:  string(d.Category),
		Title:     d.Title,
		ViewOnly:  d.ViewOnly,
		URL:       url,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

type CategoryGroup struct {
	Category  string             `json:"category"`
	Documents []DocumentResponse `json:"documents"`
}

// GroupByCategory buckets responses in the fixed category order, keeping
// empty categories so clients can render every tab.
func GroupByCategory(docs []DocumentResponse) []CategoryGroup {
	buckets := make(map[string][]DocumentResponse, len(Categories))
	for _, d := range docs {
		buckets[d.Category] = append(buckets[d.Category], d)
	}

	groups := make([]CategoryGroup, 0, len(Categories))
	for _, c := range Categories {
		items := buckets[string(c)]
		if items == nil {
			items = []DocumentResponse{}
		}
		groups = append(groups, CategoryGroup{Category: string(c), Documents: items})
	}
	return groups
}

// Download is an opened document ready to stream.
type Download struct {
	Filename    string
	ContentType string
	Content     []byte
}
