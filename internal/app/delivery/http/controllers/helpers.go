package controllers

import (
	"context"
	"errors"
	"net/http"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// decodeAndValidate parses the JSON body into request and runs the struct
// validator. prepare runs in between, so sanitized fields and path
// parameters take part in validation. On failure the error response is
// already written.
func decodeAndValidate(log *zap.Logger, w http.ResponseWriter, r *http.Request, request interface{}, prepare func()) bool {
	requestID := utils.GetRequestID(r.Context())

	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}

	if prepare != nil {
		prepare()
	}

	if err := utils.ValidateStruct(request); err != nil {
		log.Debug("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

// writeUsecaseError maps a context deadline to a gateway timeout and
// passes every other error through.
func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string, start time.Time, err error) {
	log.Error(operation+" failed",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
