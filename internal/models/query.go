package models

import "math"

// SortField is a column listings can be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "created_at"

	// sortByCreatedAtAlias is the camelCase spelling older clients send.
	sortByCreatedAtAlias SortField = "createdAt"
)

// SortOrder is the listing direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ProductFilter holds the optional, AND-combined listing filters.
type ProductFilter struct {
	Category *Category `query:"category" validate:"omitnil,oneof=electronics clothing books home sports"`
	IsActive *bool     `query:"is_active"`
	Search   string    `query:"search"`
	PriceMin *float64  `query:"price_min" validate:"omitnil,gt=0"`
	PriceMax *float64  `query:"price_max" validate:"omitnil,gt=0"`
}

// Pagination selects the page and ordering of a listing.
type Pagination struct {
	Page  int       `query:"page" validate:"min=1"`
	Limit int       `query:"limit" validate:"min=1,max=100"`
	Sort  SortField `query:"sort" validate:"oneof=name price created_at createdAt"`
	Order SortOrder `query:"order" validate:"oneof=asc desc"`
}

// DefaultPagination returns the first page of ten, newest first.
func DefaultPagination() Pagination {
	return Pagination{
		Page:  DefaultPage,
		Limit: DefaultLimit,
		Sort:  SortByCreatedAt,
		Order: OrderDesc,
	}
}

// Normalize fills zero values with defaults and resolves sort aliases.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	switch p.Sort {
	case "":
		p.Sort = SortByCreatedAt
	case sortByCreatedAtAlias:
		p.Sort = SortByCreatedAt
	}
	if p.Order == "" {
		p.Order = OrderDesc
	}
	return p
}

// Offset is the number of rows skipped before the page starts.
// It saturates at math.MaxInt instead of overflowing for huge pages.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Paging is the metadata returned with every listing.
type Paging struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPaging computes the page count for total matching rows.
func NewPaging(total int64, page, limit int) Paging {
	var pages int
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Paging{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// Paginated is one page of results plus its paging metadata.
type Paginated[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}
