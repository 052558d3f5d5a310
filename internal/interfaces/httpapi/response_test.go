package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/sports-catalog/internal/usecase"
)

func TestWritePage_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	page := usecase.NewPageRequest(2, 5, 10)

	writePage(context.Background(), rec, page, []string{"a", "b"})

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}

	var body struct {
		Page  int      `json:"page"`
		Limit int      `json:"limit"`
		Data  []string `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Page != 2 || body.Limit != 5 {
		t.Fatalf("unexpected page coordinates: page=%d limit=%d", body.Page, body.Limit)
	}
	if len(body.Data) != 2 {
		t.Fatalf("unexpected data: %v", body.Data)
	}
}

func TestWritePage_EmptyDataEncodesAsArray(t *testing.T) {
	rec := httptest.NewRecorder()

	writePage(context.Background(), rec, usecase.NewPageRequest(1, 10, 10), []teamDTO{})

	var decoded map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	data, ok := decoded["data"].([]any)
	if !ok {
		t.Fatalf("data should encode as an array, got %T", decoded["data"])
	}
	if len(data) != 0 {
		t.Fatalf("expected empty array, got %v", data)
	}
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: bad page", usecase.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: team=1", usecase.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: bad signature", usecase.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: db down", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := mapError(tc.err).HTTPStatus; got != tc.wantStatus {
			t.Fatalf("mapError(%v): got=%d want=%d", tc.err, got, tc.wantStatus)
		}
	}
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(context.Background(), rec, fmt.Errorf("%w: team=42", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var body errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != http.StatusNotFound || body.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", body.Error)
	}
}
