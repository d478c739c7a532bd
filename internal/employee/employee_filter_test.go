package employee_test

import (
	"math"
	"testing"

	"go-employee-directory/internal/employee"
	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/gormtest"

	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string { return &v }

func statusPtr(v employee.EmployeeStatus) *employee.EmployeeStatus { return &v }

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name                       string
		query, status, job, office string
		want                       employee.Filter
	}{
		{
			name: "all empty matches everything",
			want: employee.Filter{},
		},
		{
			name:   "sentinel values are dropped",
			status: "all", job: "ALL", office: " All ",
			want: employee.Filter{},
		},
		{
			name:  "query is trimmed but never treated as sentinel",
			query: "  all ",
			want:  employee.Filter{Query: "all"},
		},
		{
			name:   "status passes through",
			status: "ACTIVE",
			want:   employee.Filter{Status: statusPtr(employee.StatusActive)},
		},
		{
			name: "job and office pass through trimmed",
			job:  " Engineer", office: "Berlin ",
			want: employee.Filter{Job: strPtr("Engineer"), Office: strPtr("Berlin")},
		},
		{
			name:  "blank strings are unset",
			query: "   ", job: "  ", office: "\t",
			want: employee.Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := employee.NewFilter(tt.query, tt.status, tt.job, tt.office)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFilter_InvalidStatus(t *testing.T) {
	for _, status := range []string{"active", "RETIRED", "ACTIVE;--"} {
		t.Run(status, func(t *testing.T) {
			_, err := employee.NewFilter("", status, "", "")

			assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeStatus)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, employee.Offset(1, 10))
	assert.Equal(t, 10, employee.Offset(2, 10))
	assert.Equal(t, 40, employee.Offset(5, 10))
	assert.Equal(t, 0, employee.Offset(0, 10))
	assert.Equal(t, 0, employee.Offset(-3, 10))
	assert.Equal(t, 0, employee.Offset(3, 0))
}

func TestOffset_DoesNotWrap(t *testing.T) {
	for _, page := range []int{math.MaxInt/10 + 2, math.MaxInt} {
		off := employee.Offset(page, 10)

		assert.Equal(t, math.MaxInt, off)
	}

	last := math.MaxInt/10 + 1
	assert.Equal(t, (last-1)*10, employee.Offset(last, 10))
}

func TestOffset_HugePageKeepsOffsetClause(t *testing.T) {
	db := gormtest.DryRun(t)
	off := employee.Offset(math.MaxInt/10+2, 10)

	var rows []employee.Employee
	stmt := db.Model(&employee.Employee{}).Limit(10).Offset(off).Find(&rows).Statement

	assert.Contains(t, stmt.SQL.String(), "OFFSET")
}

func TestFilterScope_SQL(t *testing.T) {
	t.Run("empty filter has no where clause", func(t *testing.T) {
		db := gormtest.DryRun(t)

		var total int64
		stmt := db.Model(&employee.Employee{}).Scopes(employee.Filter{}.Scope()).Count(&total).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, `SELECT count(*) FROM "employees"`)
		assert.Contains(t, sql, `LEFT JOIN "departments" "Department" ON "employees"."department_id" = "Department"."id"`)
		assert.NotContains(t, sql, "WHERE")
		assert.Empty(t, stmt.Vars)
	})

	t.Run("query matches names and department case-insensitively", func(t *testing.T) {
		db := gormtest.DryRun(t)
		f, err := employee.NewFilter("Smith", "", "", "")
		assert.NoError(t, err)

		var total int64
		stmt := db.Model(&employee.Employee{}).Scopes(f.Scope()).Count(&total).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, `employees.first_name ILIKE $1 OR employees.last_name ILIKE $2 OR "Department"."name" ILIKE $3`)
		assert.Equal(t, []interface{}{"%Smith%", "%Smith%", "%Smith%"}, stmt.Vars)
	})

	t.Run("wildcards in the query are escaped", func(t *testing.T) {
		db := gormtest.DryRun(t)
		f := employee.Filter{Query: `50%_off\`}

		var total int64
		stmt := db.Model(&employee.Employee{}).Scopes(f.Scope()).Count(&total).Statement

		assert.Equal(t, `%50\%\_off\\%`, stmt.Vars[0])
	})

	t.Run("all clauses are AND-ed in order", func(t *testing.T) {
		db := gormtest.DryRun(t)
		f, err := employee.NewFilter("ann", "ACTIVE", "Engineer", "Berlin")
		assert.NoError(t, err)

		var total int64
		stmt := db.Model(&employee.Employee{}).Scopes(f.Scope()).Count(&total).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, `AND employees.status = $4`)
		assert.Contains(t, sql, `AND LOWER("Job"."title") = LOWER($5)`)
		assert.Contains(t, sql, `AND LOWER("Office"."name") = LOWER($6)`)
		assert.Equal(t, []interface{}{"%ann%", "%ann%", "%ann%", "ACTIVE", "Engineer", "Berlin"}, stmt.Vars)
	})

	t.Run("status only", func(t *testing.T) {
		db := gormtest.DryRun(t)
		f, err := employee.NewFilter("", "TERMINATED", "all", "")
		assert.NoError(t, err)

		var rows []employee.Employee
		stmt := db.Model(&employee.Employee{}).Scopes(f.Scope()).Find(&rows).Statement

		sql := stmt.SQL.String()
		assert.Contains(t, sql, `WHERE employees.status = $1`)
		assert.NotContains(t, sql, "ILIKE")
		assert.NotContains(t, sql, `LOWER("Job"."title")`)
		assert.Equal(t, []interface{}{"TERMINATED"}, stmt.Vars)
	})
}
