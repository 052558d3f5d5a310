package usecase

import "testing"

func TestNewPageRequestDefaults(t *testing.T) {
	p := NewPageRequest(0, 0, 10)
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("unexpected page request: %+v", p)
	}
	if p.Offset() != 0 {
		t.Fatalf("unexpected offset: %d", p.Offset())
	}
}

func TestNewPageRequestOffset(t *testing.T) {
	p := NewPageRequest(2, 10, 10)
	if p.Offset() != 10 {
		t.Fatalf("page=2 limit=10 must give offset 10, got %d", p.Offset())
	}

	p = NewPageRequest(5, 20, 10)
	if p.Offset() != 80 {
		t.Fatalf("page=5 limit=20 must give offset 80, got %d", p.Offset())
	}
}

func TestNewPageRequestNegativeValues(t *testing.T) {
	p := NewPageRequest(-3, -1, 20)
	if p.Page != 1 || p.Limit != 20 {
		t.Fatalf("unexpected page request: %+v", p)
	}
}
