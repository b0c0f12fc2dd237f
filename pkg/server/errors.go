/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
)

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeStructuredError maps a structured error to its HTTP status.
func (s *Server) writeStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeOf(err)
	status, retryable := statusForCode(code)
	s.writeError(w, r, status, code, err.Error(), retryable, nil)
}

// statusForCode maps engine error codes to HTTP semantics.
func statusForCode(code errors.ErrorCode) (status int, retryable bool) {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeConfiguration, errors.ErrCodeInvalidWeights:
		return http.StatusBadRequest, false
	case errors.ErrCodeNotFound:
		return http.StatusNotFound, false
	case errors.ErrCodeNoCandidates:
		return http.StatusUnprocessableEntity, false
	case errors.ErrCodeDataUnavailable, errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, true
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	default:
		return http.StatusInternalServerError, true
	}
}
