package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go-employee-directory/internal/config"
	"go-employee-directory/internal/employee"
	employeeerrors "go-employee-directory/internal/employee/errors"
	employeeMock "go-employee-directory/internal/employee/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func testDeps(svc employee.Service) (*commandDeps, *bool) {
	closed := false
	return &commandDeps{
		LoadConfig: func() (config.Config, error) { return config.Config{PageSize: 10}, nil },
		OpenService: func(config.Config) (employee.Service, func(), error) {
			return svc, func() { closed = true }, nil
		},
	}, &closed
}

func run(deps *commandDeps, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand(deps)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func samplePage() employee.EmployeePageResponse {
	return employee.EmployeePageResponse{
		Items: []employee.EmployeeResponse{{
			ID:          "e-1",
			FirstName:   "Anna",
			LastName:    "Smith",
			Email:       "anna@example.com",
			Status:      "ACTIVE",
			Job:         &employee.EmployeeJobResponse{Title: "Engineer"},
			LineManager: &employee.EmployeeLineManagerResponse{FirstName: "Maria", LastName: "Weber"},
		}},
		Total:      11,
		Page:       2,
		PageSize:   10,
		TotalPages: 2,
	}
}

func TestEmployeesList(t *testing.T) {
	t.Run("table output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		status := employee.StatusActive
		svc.EXPECT().
			SearchEmployees(gomock.Any(), employee.Filter{Query: "smith", Status: &status}, 2).
			Return(samplePage(), nil)
		deps, closed := testDeps(svc)

		out, err := run(deps, "employees", "list", "--query", "smith", "--status", "ACTIVE", "--job", "all", "--page", "2")

		assert.NoError(t, err)
		assert.Contains(t, out, "Anna Smith")
		assert.Contains(t, out, "Maria Weber")
		assert.Contains(t, out, "page 2 of 2 (11 employees)")
		assert.True(t, *closed)
	})

	t.Run("yaml output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().SearchEmployees(gomock.Any(), employee.Filter{}, 1).Return(samplePage(), nil)
		deps, _ := testDeps(svc)

		out, err := run(deps, "employees", "list", "-o", "yaml")

		assert.NoError(t, err)
		var got employee.EmployeePageResponse
		assert.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, samplePage(), got)
	})

	t.Run("json output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().SearchEmployees(gomock.Any(), gomock.Any(), 1).Return(samplePage(), nil)
		deps, _ := testDeps(svc)

		out, err := run(deps, "employees", "list", "-o", "json")

		assert.NoError(t, err)
		assert.Contains(t, out, `"first_name": "Anna"`)
		assert.Contains(t, out, `"total_pages": 2`)
	})

	t.Run("invalid status never opens the store", func(t *testing.T) {
		deps := &commandDeps{
			LoadConfig: func() (config.Config, error) {
				t.Fatal("config must not be loaded")
				return config.Config{}, nil
			},
		}

		_, err := run(deps, "employees", "list", "--status", "retired")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeStatus)
	})

	t.Run("invalid page", func(t *testing.T) {
		for _, page := range []string{"0", "1000001", "922337203685477582"} {
			deps, _ := testDeps(nil)

			_, err := run(deps, "employees", "list", "--page", page)

			assert.ErrorContains(t, err, "--page must be between", page)
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		deps, _ := testDeps(nil)

		_, err := run(deps, "employees", "list", "-o", "xml")

		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().SearchEmployees(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(employee.EmployeePageResponse{}, employeeerrors.ErrFetchEmployees)
		deps, closed := testDeps(svc)

		_, err := run(deps, "employees", "list")

		assert.ErrorIs(t, err, employeeerrors.ErrFetchEmployees)
		assert.True(t, *closed)
	})

	t.Run("config error", func(t *testing.T) {
		deps := &commandDeps{
			LoadConfig: func() (config.Config, error) { return config.Config{}, errors.New("EMPLOYEE_PAGE_SIZE: invalid syntax") },
		}

		_, err := run(deps, "employees", "list")

		assert.ErrorContains(t, err, "load config")
	})
}

func TestEmployeesCount(t *testing.T) {
	t.Run("table output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().CountEmployees(gomock.Any(), employee.Filter{}).Return(int64(23), nil)
		svc.EXPECT().PageSize().Return(10)
		deps, _ := testDeps(svc)

		out, err := run(deps, "employees", "count", "--status", "all")

		assert.NoError(t, err)
		assert.Equal(t, "23 employees, 3 pages of 10\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().CountEmployees(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		svc.EXPECT().PageSize().Return(10)
		deps, _ := testDeps(svc)

		out, err := run(deps, "emp", "count", "--office", "Berlin", "-o", "json")

		assert.NoError(t, err)
		assert.JSONEq(t, `{"count":0,"total_pages":0,"page_size":10}`, out)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().CountEmployees(gomock.Any(), gomock.Any()).Return(int64(0), employeeerrors.ErrCountEmployees)
		deps, _ := testDeps(svc)

		_, err := run(deps, "employees", "count")

		assert.ErrorIs(t, err, employeeerrors.ErrCountEmployees)
	})
}
