package scheduleerrors

import (
	"net/http"

	"github.com/chalbrik/planner/internal/shared/apperror"
)

var (
	ErrInvalidLocationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid location id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidConfiguration,
		"month must be between 1 and 12 and year must be positive",
		http.StatusBadRequest,
	)
)
