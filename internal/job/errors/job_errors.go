package joberrors

import (
	"go-employee-directory/internal/shared/apperror"
	"net/http"
)

var ErrFetchJobs = apperror.New(
	apperror.CodeInternalError,
	"Failed to fetch the Jobs",
	http.StatusInternalServerError,
)
