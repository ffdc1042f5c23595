// Package listing turns collection query parameters into gorm scopes.
//
// Filters follow AIP-160 (e.g. `level >= 5 AND classId = "..."`) and orderings follow AIP-132
// (e.g. `level desc, name`). Field names are the camelCase names of the JSON API, mapped to SQL
// columns through an explicit per-resource Fields table.
package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.einride.tech/aip/ordering"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/x/util"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultOrder    = "cdate desc"
)

type FieldType int

const (
	String FieldType = iota
	Int
	Float
	Bool
	Timestamp
)

// Field maps one API field to its SQL column
type Field struct {
	Column string
	Type   FieldType
}

// Fields is the table of filterable and sortable fields of a resource, keyed by API name
type Fields map[string]Field

// Query is a parsed list request
type Query struct {
	Page     int
	PageSize int
	Where    Condition
	Order    []clause.OrderByColumn
}

// FromContext reads page, pageSize, orderBy and filter from the query string
func FromContext(c echo.Context) (core.ListOptions, error) {
	opts := core.ListOptions{
		OrderBy: c.QueryParam("orderBy"),
		Filter:  c.QueryParam("filter"),
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return opts, core.NewErrorInvalidArgument("page must be an integer")
		}
		opts.Page = page
	}

	if raw := c.QueryParam("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return opts, core.NewErrorInvalidArgument("pageSize must be an integer")
		}
		opts.PageSize = size
	}

	return opts, nil
}

// Parse validates the options against the field table.
// defaultOrder is used when opts.OrderBy is empty and must itself be valid for fields.
func Parse(opts core.ListOptions, fields Fields, defaultOrder string) (Query, error) {
	q := Query{
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return Query{}, core.NewErrorInvalidArgument("page must be >= 1")
	}

	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return Query{}, core.NewErrorInvalidArgument(fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize))
	}

	orderBy := opts.OrderBy
	if strings.TrimSpace(orderBy) == "" {
		orderBy = defaultOrder
	}
	order, err := parseOrderBy(orderBy, fields)
	if err != nil {
		return Query{}, err
	}
	q.Order = order

	where, err := ParseFilter(opts.Filter, fields)
	if err != nil {
		return Query{}, err
	}
	q.Where = where

	return q, nil
}

func parseOrderBy(raw string, fields Fields) ([]clause.OrderByColumn, error) {
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(raw); err != nil {
		return nil, core.NewErrorInvalidArgument("orderBy: " + err.Error())
	}

	columns := make([]clause.OrderByColumn, 0, len(orderBy.Fields)+1)
	hasID := false
	for _, f := range orderBy.Fields {
		field, ok := fields[f.Path]
		if !ok {
			return nil, core.NewErrorInvalidArgument("orderBy: unknown field " + f.Path)
		}
		if field.Column == "id" {
			hasID = true
		}
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: field.Column},
			Desc:   f.Desc,
		})
	}

	// stable paging
	if !hasID {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	return columns, nil
}

// Offset is the number of rows skipped before the current page
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Filter is a gorm scope applying the where clause only
func (q Query) Filter(db *gorm.DB) *gorm.DB {
	if q.Where.Clause == "" {
		return db
	}
	return db.Where(q.Where.Clause, q.Where.Params...)
}

// Paginate is a gorm scope applying ordering, offset and limit
func (q Query) Paginate(db *gorm.DB) *gorm.DB {
	for _, column := range q.Order {
		db = db.Order(column)
	}
	return db.Offset(q.Offset()).Limit(q.PageSize)
}

// Find loads one page of T together with the total number of matching rows.
// Extra scopes (preloads, fixed conditions) apply to both the count and the page.
func Find[T any](ctx context.Context, db *gorm.DB, q Query, scopes ...func(*gorm.DB) *gorm.DB) (core.Page[T], error) {
	var total int64
	err := db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Scopes(q.Filter).Count(&total).Error
	if err != nil {
		return core.Page[T]{}, util.TranslateError(err)
	}

	var items []T
	err = db.WithContext(ctx).Scopes(scopes...).Scopes(q.Filter, q.Paginate).Find(&items).Error
	if err != nil {
		return core.Page[T]{}, util.TranslateError(err)
	}
	if items == nil {
		items = []T{}
	}

	return core.Page[T]{
		Items:    items,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}
