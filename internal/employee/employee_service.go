package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-employee-directory/internal/department"
	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/job"
	"go-employee-directory/internal/office"
	"go-employee-directory/internal/shared/contextutil"
	"go-employee-directory/internal/shared/metrics"
	"go-employee-directory/internal/shared/response"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultPageSize = 10

	FilterOptionsKey = "employees:filter-options"
	FilterOptionsTTL = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	ListEmployees(ctx context.Context, filter Filter, page int) ([]EmployeeResponse, error)
	CountEmployees(ctx context.Context, filter Filter) (int64, error)
	SearchEmployees(ctx context.Context, filter Filter, page int) (EmployeePageResponse, error)
	GetFilterOptions(ctx context.Context) (FilterOptionsResponse, error)
	PageSize() int
}

// Lookups are the reference tables behind the directory dropdowns.
type Lookups struct {
	Departments department.Repository
	Jobs        job.Repository
	Offices     office.Repository
}

type service struct {
	repo     Repository
	lookups  Lookups
	rdb      *redis.Client
	sf       *singleflight.Group
	pageSize int
	tracer   trace.Tracer
	logger   *zap.Logger
}

// NewService builds the directory service. A nil rdb disables the filter
// options cache; pageSize below 1 falls back to DefaultPageSize.
func NewService(repo Repository, lookups Lookups, rdb *redis.Client, pageSize int, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &service{
		repo:     repo,
		lookups:  lookups,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		pageSize: pageSize,
		tracer:   otel.Tracer("go-employee-directory/internal/employee"),
		logger:   l,
	}
}

func (s *service) PageSize() int {
	return s.pageSize
}

func (s *service) ListEmployees(ctx context.Context, filter Filter, page int) ([]EmployeeResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := Offset(page, s.pageSize)

	ctx, span := s.tracer.Start(ctx, "employee.list", trace.WithAttributes(
		append(filterAttributes(filter), attribute.Int("page", page), attribute.Int("offset", offset))...,
	))
	defer span.End()

	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("list employees requested",
		zap.String("query", filter.Query),
		zap.Int("page", page),
		zap.Int("offset", offset),
	)

	start := time.Now()
	employees, err := s.repo.FindPage(ctx, filter, s.pageSize, offset)
	metrics.ObserveQuery("list", start, err)
	if err != nil {
		logger.Error("list employees failed", append(storeErrorFields(err), zap.Int("page", page))...)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list employees failed")
		return nil, mapRepositoryError(err, employeeerrors.ErrFetchEmployees)
	}

	span.SetAttributes(attribute.Int("result.count", len(employees)))
	return mapToListResponse(employees), nil
}

func (s *service) CountEmployees(ctx context.Context, filter Filter) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "employee.count", trace.WithAttributes(filterAttributes(filter)...))
	defer span.End()

	logger := contextutil.GetLogger(ctx, s.logger)

	start := time.Now()
	total, err := s.repo.Count(ctx, filter)
	metrics.ObserveQuery("count", start, err)
	if err != nil {
		logger.Error("count employees failed", storeErrorFields(err)...)
		span.RecordError(err)
		span.SetStatus(codes.Error, "count employees failed")
		return 0, mapRepositoryError(err, employeeerrors.ErrCountEmployees)
	}

	span.SetAttributes(attribute.Int64("result.total", total))
	return total, nil
}

// SearchEmployees runs the page and count queries concurrently. The two reads
// are independent, so under concurrent writes they may disagree slightly.
func (s *service) SearchEmployees(ctx context.Context, filter Filter, page int) (EmployeePageResponse, error) {
	if page < 1 {
		page = 1
	}

	ctx, span := s.tracer.Start(ctx, "employee.search")
	defer span.End()

	var (
		items []EmployeeResponse
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.ListEmployees(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.CountEmployees(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return EmployeePageResponse{}, err
	}

	return EmployeePageResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: response.TotalPages(total, s.pageSize),
	}, nil
}

func (s *service) GetFilterOptions(ctx context.Context) (FilterOptionsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "employee.filter_options")
	defer span.End()

	logger := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, FilterOptionsKey).Result()
		switch {
		case err == nil:
			var resp FilterOptionsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				span.SetAttributes(attribute.Bool("cache.hit", true))
				return resp, nil
			}
			logger.Warn("filter options cache entry is corrupt", zap.String("key", FilterOptionsKey))
		case !errors.Is(err, redis.Nil):
			logger.Warn("filter options cache read failed", zap.String("key", FilterOptionsKey), zap.Error(err))
		}
	}

	// Concurrent misses share one round of lookup queries.
	v, err, _ := s.sf.Do(FilterOptionsKey, func() (interface{}, error) {
		resp, err := s.loadFilterOptions(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, FilterOptionsKey, jsonData, FilterOptionsTTL).Err(); err != nil {
					logger.Warn("filter options cache write failed", zap.String("key", FilterOptionsKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		logger.Error("get filter options failed", storeErrorFields(err)...)
		span.RecordError(err)
		span.SetStatus(codes.Error, "get filter options failed")
		return FilterOptionsResponse{}, mapRepositoryError(err, employeeerrors.ErrFetchFilterOptions)
	}

	return v.(FilterOptionsResponse), nil
}

func (s *service) loadFilterOptions(ctx context.Context) (FilterOptionsResponse, error) {
	start := time.Now()

	resp := FilterOptionsResponse{
		Statuses:    make([]string, len(Statuses)),
		Jobs:        []string{},
		Offices:     []string{},
		Departments: []string{},
	}
	for i, st := range Statuses {
		resp.Statuses[i] = string(st)
	}

	if s.lookups.Jobs != nil {
		jobs, err := s.lookups.Jobs.FindAll(ctx)
		if err != nil {
			metrics.ObserveQuery("filter_options", start, err)
			return FilterOptionsResponse{}, err
		}
		seen := map[string]struct{}{}
		for _, j := range jobs {
			resp.Jobs = appendUnique(resp.Jobs, seen, j.Title)
		}
	}

	if s.lookups.Offices != nil {
		offices, err := s.lookups.Offices.FindAll(ctx)
		if err != nil {
			metrics.ObserveQuery("filter_options", start, err)
			return FilterOptionsResponse{}, err
		}
		seen := map[string]struct{}{}
		for _, o := range offices {
			resp.Offices = appendUnique(resp.Offices, seen, o.Name)
		}
	}

	if s.lookups.Departments != nil {
		depts, err := s.lookups.Departments.FindAll(ctx)
		if err != nil {
			metrics.ObserveQuery("filter_options", start, err)
			return FilterOptionsResponse{}, err
		}
		seen := map[string]struct{}{}
		for _, d := range depts {
			resp.Departments = appendUnique(resp.Departments, seen, d.Name)
		}
	}

	metrics.ObserveQuery("filter_options", start, nil)
	return resp, nil
}

func filterAttributes(f Filter) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.Bool("filter.query", f.Query != "")}
	if f.Status != nil {
		attrs = append(attrs, attribute.String("filter.status", string(*f.Status)))
	}
	if f.Job != nil {
		attrs = append(attrs, attribute.String("filter.job", *f.Job))
	}
	if f.Office != nil {
		attrs = append(attrs, attribute.String("filter.office", *f.Office))
	}
	return attrs
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email,
		Selected:  empl.Selected,
		Status:    string(empl.Status),
	}
	if empl.Image != nil {
		resp.Image = *empl.Image
	}
	if empl.Job != nil {
		resp.Job = &EmployeeJobResponse{Title: empl.Job.Title}
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{Name: empl.Department.Name}
	}
	if empl.Office != nil {
		resp.Office = &EmployeeOfficeResponse{Name: empl.Office.Name}
	}
	if empl.LineManager != nil {
		resp.LineManager = &EmployeeLineManagerResponse{
			FirstName: empl.LineManager.FirstName,
			LastName:  empl.LineManager.LastName,
		}
	}
	return resp
}

// mapToListResponse never returns nil, so an empty page encodes as [].
func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

// appendUnique keeps the first occurrence of v, preserving repository order.
func appendUnique(dst []string, seen map[string]struct{}, v string) []string {
	if _, ok := seen[v]; ok {
		return dst
	}
	seen[v] = struct{}{}
	return append(dst, v)
}
