package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContextDefaults(t *testing.T) {
	p := FromContext(newContext(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContextClampsLimit(t *testing.T) {
	p := FromContext(newContext("limit=5000&offset=40"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
	if p.Offset != 40 {
		t.Errorf("expected offset 40, got %d", p.Offset)
	}
}

func TestFromContextNegativeValues(t *testing.T) {
	p := FromContext(newContext("limit=-3&offset=-9"))
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("expected defaults, got limit=%d offset=%d", p.Limit, p.Offset)
	}
}

func TestNewResponseHasMore(t *testing.T) {
	r := NewResponse(nil, 50, 20, 0)
	if !r.HasMore {
		t.Error("expected has_more true for first page of 50")
	}
	r = NewResponse(nil, 50, 20, 40)
	if r.HasMore {
		t.Error("expected has_more false for last page")
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		p          Params
		total      int
		start, end int
	}{
		{"first page", Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{"last partial page", Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{"offset past end", Params{Limit: 10, Offset: 40}, 25, 25, 25},
		{"empty collection", Params{Limit: 10, Offset: 0}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Slice(tt.total)
			if start != tt.start || end != tt.end {
				t.Errorf("got [%d,%d), want [%d,%d)", start, end, tt.start, tt.end)
			}
		})
	}
}
