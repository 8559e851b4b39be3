package lca

import (
	"math"
	"sort"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter is the listing predicate. The live query and the fallback path both
// evaluate it, so the two must stay in agreement.
type Filter struct {
	Status   Status
	VisaType VisaType
	Search   string

	// CertifiedOnly restricts results to certified postings regardless of
	// Status. It is set for every non-admin caller.
	CertifiedOnly bool
}

func (f Filter) Normalized() Filter {
	f.Status = Status(strings.ToLower(strings.TrimSpace(string(f.Status))))
	f.VisaType = VisaType(strings.TrimSpace(string(f.VisaType)))
	f.Search = strings.TrimSpace(f.Search)
	return f
}

func (f Filter) Matches(p Posting) bool {
	if f.CertifiedOnly && p.Status != StatusCertified {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.VisaType != "" && p.VisaType != f.VisaType {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		hay := []string{p.JobTitle, p.EmployerName, p.LCANumber, p.WorksiteCity}
		found := false
		for _, h := range hay {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply filters items and orders them newest first.
func Apply(items []Posting, f Filter) []Posting {
	f = f.Normalized()
	out := make([]Posting, 0, len(items))
	for _, p := range items {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// (page-1)*limit must stay representable as an offset.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return page, limit
}

func Offset(page, limit int) int {
	page, limit = NormalizePage(page, limit)
	return (page - 1) * limit
}

func NewPagination(page, limit, total int) Pagination {
	page, limit = NormalizePage(page, limit)
	if total < 0 {
		total = 0
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

// Paginate slices an already filtered and ordered result set.
func Paginate(items []Posting, page, limit int) ([]Posting, Pagination) {
	pg := NewPagination(page, limit, len(items))
	start := (pg.Page - 1) * pg.Limit
	if start >= len(items) {
		return []Posting{}, pg
	}
	end := start + pg.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]Posting, end-start)
	copy(out, items[start:end])
	return out, pg
}
