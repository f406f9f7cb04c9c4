package utils

import (
	"gorm.io/gorm"
)

// Every listing shows a fixed 20 rows per page
const PerPage = 20

type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

func NewPagination(page int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := int((total + PerPage - 1) / PerPage)
	return Pagination{
		Page:       page,
		PerPage:    PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }
func (p Pagination) PrevPage() int { return p.Page - 1 }
func (p Pagination) NextPage() int { return p.Page + 1 }

// Paginate is a gorm scope applying the fixed page window. A page past the
// end of the result set simply selects zero rows.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * PerPage).Limit(PerPage)
	}
}
