package model

import (
	"errors"
	"fmt"
)

var ErrPageInvariant = errors.New("page invariant violated")

// Page is the paginated collection wrapper returned by listing endpoints.
// CurrentPage is zero-based.
type Page[T any] struct {
	Content       []T   `json:"content" validate:"dive"`
	TotalElements int64 `json:"totalElements" validate:"gte=0"`
	TotalPages    int   `json:"totalPages" validate:"gte=0"`
	CurrentPage   int   `json:"currentPage" validate:"gte=0"`
	PageSize      int   `json:"pageSize" validate:"gte=0"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Validate checks the structural invariants every page response must hold.
func (p *Page[T]) Validate() error {
	if len(p.Content) > p.PageSize {
		return fmt.Errorf("%w: %d items exceed page size %d", ErrPageInvariant, len(p.Content), p.PageSize)
	}
	if p.CurrentPage == 0 && !p.First {
		return fmt.Errorf("%w: page 0 not flagged first", ErrPageInvariant)
	}
	return nil
}

// NewPage slices items into the zero-based page of the given size.
func NewPage[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = len(items)
	}
	if page < 0 {
		page = 0
	}
	total := len(items)
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	content := make([]T, end-start)
	copy(content, items[start:end])
	return Page[T]{
		Content:       content,
		TotalElements: int64(total),
		TotalPages:    totalPages,
		CurrentPage:   page,
		PageSize:      size,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
