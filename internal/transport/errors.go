package transport

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/service"
)

var statusByError = []struct {
	err  error
	code int
}{
	{service.ErrPoolNotFound, http.StatusNotFound},
	{service.ErrNotAuthorized, http.StatusForbidden},
	{service.ErrPoolNotAcceptingContributions, http.StatusConflict},
	{service.ErrDuplicateContributor, http.StatusConflict},
	{service.ErrAlreadyFinalized, http.StatusConflict},
	{service.ErrThresholdNotMet, http.StatusConflict},
	{service.ErrNotFinalized, http.StatusConflict},
	{service.ErrPoolCancelled, http.StatusConflict},
	{service.ErrNotCancellable, http.StatusConflict},
	{service.ErrAggregationExpired, http.StatusGone},
	{service.ErrBackendUnavailable, http.StatusServiceUnavailable},
	{service.ErrEncryptionFailed, http.StatusBadGateway},
	{service.ErrAggregationFailed, http.StatusBadGateway},
	{service.ErrChainRejected, http.StatusBadGateway},
	{service.ErrChainUnavailable, http.StatusBadGateway},
	{service.ErrJournalDisabled, http.StatusNotImplemented},
}

// httpStatus maps an engine error to its response code. Unknown errors are internal.
func httpStatus(err error) int {
	var reqErr *requestError
	if errors.As(err, &reqErr) || service.IsValidation(err) {
		return http.StatusBadRequest
	}
	for _, s := range statusByError {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}
