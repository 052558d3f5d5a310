package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

// pageEnvelope is the body of every paginated listing: the echoed
// page coordinates plus the data slice, which is always present and
// encodes as [] when empty.
type pageEnvelope struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Data  any `json:"data"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"status":"INTERNAL","message":"encode response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writePage(ctx context.Context, w http.ResponseWriter, page usecase.PageRequest, data any) {
	ctx, span := startSpan(ctx, "httpapi.writePage")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, pageEnvelope{
		Page:  page.Page,
		Limit: page.Limit,
		Data:  data,
	})
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, dataEnvelope{Data: data})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(err)
	writeJSON(ctx, w, mapped.HTTPStatus, errorEnvelope{
		Error: errorBody{
			Code:    mapped.HTTPStatus,
			Status:  mapped.Status,
			Message: err.Error(),
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Error: errorBody{
			Code:    http.StatusInternalServerError,
			Status:  "INTERNAL",
			Message: "internal server error",
		},
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Status: "UNAUTHENTICATED"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Status: "UNAVAILABLE"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Status: "INTERNAL"}
	}
}
