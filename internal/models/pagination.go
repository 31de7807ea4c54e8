// internal/models/pagination.go
package models

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Pagination struct {
	Skip  int `json:"skip" form:"skip"`
	Limit int `json:"limit" form:"limit"`
}

func NewPagination(skip, limit int) *Pagination {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return &Pagination{
		Skip:  skip,
		Limit: limit,
	}
}

func (p *Pagination) GetOffset() int {
	return p.Skip
}

func (p *Pagination) GetLimit() int {
	return p.Limit
}
