package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-discovery-config/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrOptionsNotResolved:  http.StatusServiceUnavailable,
	service.ErrNoCredentials:       http.StatusNotFound,
	service.ErrInvalidCredentials:  http.StatusBadGateway,
	service.ErrTokenEndpoint:       http.StatusBadGateway,
	service.ErrTokenEndpointConfig: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
