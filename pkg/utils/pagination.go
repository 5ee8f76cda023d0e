package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

var (
	ErrInvalidPage  = errors.New("page must be an integer greater than or equal to 1")
	ErrInvalidLimit = errors.New("limit must be an integer between 1 and 50")
)

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// ParsePagination reads raw query values. Blank values take the defaults
// (page 1, limit 10); anything present must be within bounds.
func ParsePagination(rawPage, rawLimit string) (PaginationParams, error) {
	params := PaginationParams{Page: DefaultPage, Limit: DefaultLimit}

	if v := strings.TrimSpace(rawPage); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}

	if v := strings.TrimSpace(rawLimit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, ErrInvalidLimit
		}
		params.Limit = limit
	}

	return params, nil
}

// Validate checks bounds on already-parsed params
func (p PaginationParams) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

// Offset returns the SQL offset
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{Page: 1, Limit: int(totalCount), TotalCount: totalCount, TotalPages: 1}
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))
	if totalPages < 0 {
		totalPages = 0
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
