package dto

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterAll is the sentinel value the console uses for "no restriction" on
// enumerated filters. It is never sent to the backend.
const FilterAll = "all"

const DefaultSalesDays = 30

// Ptr returns a pointer to v, for optional filter and request fields.
func Ptr[T any](v T) *T { return &v }

// ProductFilter selects a page of products. Zero CategoryID, empty Search and
// nil pointers mean "not set" and are left out of the query string.
type ProductFilter struct {
	CategoryID int64  `form:"categoryId"`
	Search     string `form:"search"`
	InStock    *bool  `form:"inStock"`
	Page       *int   `form:"page"`
	Size       *int   `form:"size"`
}

func (f ProductFilter) Equal(o ProductFilter) bool {
	return f.CategoryID == o.CategoryID &&
		f.Search == o.Search &&
		equalPtr(f.InStock, o.InStock) &&
		equalPtr(f.Page, o.Page) &&
		equalPtr(f.Size, o.Size)
}

func (f ProductFilter) Query() url.Values {
	q := url.Values{}
	if f.CategoryID > 0 {
		q.Set("categoryId", strconv.FormatInt(f.CategoryID, 10))
	}
	setString(q, "search", f.Search)
	if f.InStock != nil {
		q.Set("inStock", strconv.FormatBool(*f.InStock))
	}
	setInt(q, "page", f.Page)
	setInt(q, "size", f.Size)
	return q
}

type OrderFilter struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Page   *int   `form:"page"`
	Limit  *int   `form:"limit"`
}

func (f OrderFilter) Equal(o OrderFilter) bool {
	return enumValue(f.Status) == enumValue(o.Status) &&
		f.Search == o.Search &&
		equalPtr(f.Page, o.Page) &&
		equalPtr(f.Limit, o.Limit)
}

func (f OrderFilter) Query() url.Values {
	q := url.Values{}
	setEnum(q, "status", f.Status)
	setString(q, "search", f.Search)
	setInt(q, "page", f.Page)
	setInt(q, "limit", f.Limit)
	return q
}

type UserFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

func (f UserFilter) Equal(o UserFilter) bool {
	return f.Search == o.Search && enumValue(f.Status) == enumValue(o.Status)
}

func (f UserFilter) Query() url.Values {
	q := url.Values{}
	setString(q, "search", f.Search)
	setEnum(q, "status", f.Status)
	return q
}

// NotificationFilter picks between the full feed and the unread feed.
type NotificationFilter struct {
	UnreadOnly bool
}

func (f NotificationFilter) Equal(o NotificationFilter) bool { return f == o }

type SalesFilter struct {
	Days int `form:"days"`
}

func (f SalesFilter) Equal(o SalesFilter) bool { return f.EffectiveDays() == o.EffectiveDays() }

// EffectiveDays is the reporting window actually requested.
func (f SalesFilter) EffectiveDays() int {
	if f.Days <= 0 {
		return DefaultSalesDays
	}
	return f.Days
}

func (f SalesFilter) Query() url.Values {
	return url.Values{"days": {strconv.Itoa(f.EffectiveDays())}}
}

// NoFilter is used by collections that are always fetched whole.
type NoFilter struct{}

func (NoFilter) Equal(NoFilter) bool { return true }

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// setString sends v as typed; only the empty string is left out.
func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setEnum(q url.Values, key, v string) {
	if v = enumValue(v); v != "" {
		q.Set(key, v)
	}
}

// enumValue maps FilterAll, in any case, to "not set".
func enumValue(v string) string {
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}
