package domain

// Paper is a published paper as returned by the backend explore endpoint.
type Paper struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	AbstractSnippet string     `json:"abstractSnippet"`
	UploadedAt      string     `json:"uploadedAt"`
	PublicationYear *int       `json:"publicationYear"`
	Categories      []Category `json:"categories"`
}

// PaperPage is one page of search results, mirroring the backend's
// paginated response shape.
type PaperPage struct {
	Content       []Paper `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
	First         bool    `json:"first"`
	Last          bool    `json:"last"`
}

// SearchRequest is the fully resolved query the backend executes:
// interpretation output with category names already mapped to IDs,
// plus pagination.
type SearchRequest struct {
	Query       string
	CategoryIDs []string
	Year        int
	Author      string
	Page        int
	Size        int
}

// HasFilters reports whether any filter is set. A filterless request is an
// unfiltered browse of all papers.
func (r SearchRequest) HasFilters() bool {
	return r.Query != "" || len(r.CategoryIDs) > 0 || r.Year != 0 || r.Author != ""
}
