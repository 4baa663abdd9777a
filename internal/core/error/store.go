package errx

import "net/http"

// WrapStore wraps a lead store error with a consistent status code and message.
func WrapStore(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(err, http.StatusInternalServerError, LeadStoreErrorMessage)
}
