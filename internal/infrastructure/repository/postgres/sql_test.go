package postgres

import (
	"database/sql"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows should classify as not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatal("arbitrary errors are not not-found")
	}
	if isNotFound(nil) {
		t.Fatal("nil is not not-found")
	}
}

func TestWrappedErrorsKeepCause(t *testing.T) {
	wrapped := crerr.Wrap(sql.ErrNoRows, "select team")
	if !errors.Is(wrapped, sql.ErrNoRows) {
		t.Fatal("wrapping must preserve the cause chain")
	}
}

func TestNullHelpers(t *testing.T) {
	if got := nullStringPtr(sql.NullString{}); got != nil {
		t.Fatalf("invalid NullString should map to nil, got %v", got)
	}
	if got := nullStringPtr(sql.NullString{String: "x", Valid: true}); got == nil || *got != "x" {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := nullIntPtr(sql.NullInt64{Int64: 3, Valid: true}); got == nil || *got != 3 {
		t.Fatalf("unexpected value: %v", got)
	}
	if got := nullInt64Ptr(sql.NullInt64{}); got != nil {
		t.Fatalf("invalid NullInt64 should map to nil, got %v", got)
	}
}
