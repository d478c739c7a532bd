package employeeerrors

import (
	"go-employee-directory/internal/shared/apperror"
	"net/http"
)

// Store failures are folded into these; the cause is logged, never returned.
var (
	ErrFetchEmployees = apperror.New(
		apperror.CodeInternalError,
		"Failed to fetch the Employees",
		http.StatusInternalServerError,
	)
	ErrCountEmployees = apperror.New(
		apperror.CodeInternalError,
		"Failed to fetch the Employees Count",
		http.StatusInternalServerError,
	)
	ErrFetchFilterOptions = apperror.New(
		apperror.CodeInternalError,
		"Failed to fetch the Employee filter options",
		http.StatusInternalServerError,
	)
	ErrInvalidEmployeeStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee status",
		http.StatusBadRequest,
	)
)
