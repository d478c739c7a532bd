package employee

import (
	"math"
	"strings"

	employeeerrors "go-employee-directory/internal/employee/errors"

	"gorm.io/gorm"
)

// FilterAll is the dropdown value meaning "no filter selected".
const FilterAll = "all"

// MaxPage bounds the page number accepted from callers.
const MaxPage = 1_000_000

// Filter is the normalized directory predicate. A nil field adds no clause.
type Filter struct {
	Query  string
	Status *EmployeeStatus
	Job    *string
	Office *string
}

// NewFilter normalizes raw request values. Blank values and FilterAll become nil;
// the free-text query is only trimmed. An unknown status is rejected here
// instead of reaching the database enum.
func NewFilter(query, status, job, office string) (Filter, error) {
	f := Filter{
		Query:  strings.TrimSpace(query),
		Job:    optional(job),
		Office: optional(office),
	}

	if s := optional(status); s != nil {
		st, err := ParseEmployeeStatus(*s)
		if err != nil {
			return Filter{}, employeeerrors.ErrInvalidEmployeeStatus
		}
		f.Status = &st
	}

	return f, nil
}

// Scope applies the predicate to a query on Employee. It is shared by the
// page and count queries so both always see the same condition:
//
//	(first_name ILIKE q OR last_name ILIKE q OR Department.name ILIKE q)
//	AND status = s AND lower(Job.title) = lower(j) AND lower(Office.name) = lower(o)
func (f Filter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("Job").Joins("Department").Joins("Office")

		if f.Query != "" {
			pattern := containsPattern(f.Query)
			db = db.Where(
				`(employees.first_name ILIKE ? OR employees.last_name ILIKE ? OR "Department"."name" ILIKE ?)`,
				pattern, pattern, pattern,
			)
		}
		if f.Status != nil {
			db = db.Where("employees.status = ?", string(*f.Status))
		}
		if f.Job != nil {
			db = db.Where(`LOWER("Job"."title") = LOWER(?)`, *f.Job)
		}
		if f.Office != nil {
			db = db.Where(`LOWER("Office"."name") = LOWER(?)`, *f.Office)
		}
		return db
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, FilterAll) {
		return nil
	}
	return &v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE substring pattern with wildcards in the input escaped.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// Offset is the zero-based row offset of page; pages below 1 are treated as 1.
// An offset that does not fit in an int saturates at math.MaxInt, which still
// selects an empty page instead of wrapping around to the first one.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
