package handler

import (
	"errors"
	"net/http"
	"time"

	"incentivehub/internal/middleware"
	"incentivehub/internal/model"
	"incentivehub/internal/report"
	"incentivehub/internal/service"

	"github.com/gin-gonic/gin"
)

// scopeSeller returns the seller filter for list endpoints: sellers only see
// their own records, admins see everything unless they narrow with ?seller=.
func scopeSeller(c *gin.Context) string {
	if middleware.SubjectRole(c) == model.RoleSeller {
		return middleware.SubjectID(c)
	}
	return c.Query("seller")
}

// statusFor maps domain errors to HTTP status codes. Unmatched errors are
// treated as bad requests: every service failure here is a validation or
// workflow refusal, never a process fault.
func statusFor(err error) int {
	var fetchErr *service.FetchError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrAlreadyDecided),
		errors.Is(err, model.ErrScheduleConflict),
		errors.Is(err, model.ErrDuplicateEmail),
		errors.Is(err, model.ErrDuplicateDocument),
		errors.Is(err, model.ErrDuplicateCode),
		errors.Is(err, service.ErrFetchInFlight):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientPoints),
		errors.Is(err, model.ErrRewardOutOfStock):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// parseRange reads optional from/to query parameters ("2006-01-02") into a
// report range. An unparseable bound is a validation error.
func parseRange(c *gin.Context) (report.Range, error) {
	var r report.Range
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return report.Range{}, errors.New("invalid 'from' date, expected YYYY-MM-DD")
		}
		r.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return report.Range{}, errors.New("invalid 'to' date, expected YYYY-MM-DD")
		}
		r.To = &t
	}
	return r, nil
}
