package listing

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"

	"github.com/totegamma/charsheet/core"
	"github.com/totegamma/charsheet/internal/testutil"
)

var testFields = Fields{
	"id":      {Column: "id", Type: String},
	"name":    {Column: "name", Type: String},
	"level":   {Column: "level", Type: Int},
	"classId": {Column: "class_id", Type: String},
	"weight":  {Column: "weight", Type: Float},
	"cdate":   {Column: "c_date", Type: Timestamp},
}

func TestParseDefaults(t *testing.T) {
	q, err := Parse(core.ListOptions{}, testFields, "cdate desc")
	if assert.NoError(t, err) {
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, DefaultPageSize, q.PageSize)
		assert.Equal(t, 0, q.Offset())
		assert.Empty(t, q.Where.Clause)
		assert.Equal(t, []clause.OrderByColumn{
			{Column: clause.Column{Name: "c_date"}, Desc: true},
			{Column: clause.Column{Name: "id"}},
		}, q.Order)
	}
}

func TestParsePageBounds(t *testing.T) {
	q, err := Parse(core.ListOptions{Page: 3, PageSize: 10}, testFields, "name")
	if assert.NoError(t, err) {
		assert.Equal(t, 20, q.Offset())
	}

	_, err = Parse(core.ListOptions{PageSize: MaxPageSize + 1}, testFields, "name")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = Parse(core.ListOptions{Page: -1}, testFields, "name")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = Parse(core.ListOptions{PageSize: -5}, testFields, "name")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestParseOrderBy(t *testing.T) {
	q, err := Parse(core.ListOptions{OrderBy: "level desc, name"}, testFields, "cdate desc")
	if assert.NoError(t, err) {
		assert.Equal(t, []clause.OrderByColumn{
			{Column: clause.Column{Name: "level"}, Desc: true},
			{Column: clause.Column{Name: "name"}},
			{Column: clause.Column{Name: "id"}},
		}, q.Order)
	}

	q, err = Parse(core.ListOptions{OrderBy: "id desc"}, testFields, "cdate desc")
	if assert.NoError(t, err) {
		assert.Len(t, q.Order, 1)
	}

	_, err = Parse(core.ListOptions{OrderBy: "password"}, testFields, "cdate desc")
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestParseFilter(t *testing.T) {
	cond, err := ParseFilter(`level >= 5 AND classId = "abc"`, testFields)
	if assert.NoError(t, err) {
		assert.Equal(t, "(level >= ? AND class_id = ?)", cond.Clause)
		assert.Equal(t, []any{int64(5), "abc"}, cond.Params)
	}

	cond, err = ParseFilter(`name = "Aria" OR name = "Brom"`, testFields)
	if assert.NoError(t, err) {
		assert.Equal(t, "(name = ? OR name = ?)", cond.Clause)
		assert.Equal(t, []any{"Aria", "Brom"}, cond.Params)
	}

	cond, err = ParseFilter(`cdate > timestamp("2024-01-02T03:04:05Z")`, testFields)
	if assert.NoError(t, err) {
		assert.Equal(t, "c_date > ?", cond.Clause)
		assert.Equal(t, []any{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}, cond.Params)
	}

	cond, err = ParseFilter("", testFields)
	if assert.NoError(t, err) {
		assert.Empty(t, cond.Clause)
		assert.Empty(t, cond.Params)
	}
}

func TestParseFilterRejectsUnknownField(t *testing.T) {
	_, err := ParseFilter(`secret = "x"`, testFields)
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})

	_, err = ParseFilter(`level >=`, testFields)
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}

func TestFromContext(t *testing.T) {
	c, _, _, _ := testutil.CreateHttpRequest(http.MethodGet, "/characters?page=2&pageSize=5&orderBy=name&filter=level%20%3E%3D%203", "")

	opts, err := FromContext(c)
	if assert.NoError(t, err) {
		assert.Equal(t, core.ListOptions{
			Page:     2,
			PageSize: 5,
			OrderBy:  "name",
			Filter:   "level >= 3",
		}, opts)
	}

	c, _, _, _ = testutil.CreateHttpRequest(http.MethodGet, "/characters?page=two", "")
	_, err = FromContext(c)
	assert.ErrorAs(t, err, &core.ErrorInvalidArgument{})
}
