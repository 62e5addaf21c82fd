package dispatch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestResolve_NumericSegment(t *testing.T) {
	cases := []struct {
		method string
		action string
	}{
		{http.MethodGet, "show"},
		{http.MethodPut, "update"},
		{http.MethodPatch, "update"},
		{http.MethodDelete, "destroy"},
		{http.MethodPost, "store"},
	}
	for _, tc := range cases {
		res := Resolve(tc.method, "123", "")
		if res.Action != tc.action {
			t.Fatalf("%s with numeric id: expected %q, got %q", tc.method, tc.action, res.Action)
		}
		if !res.HasID || res.ID != 123 {
			t.Fatalf("%s with numeric id: id not captured: %+v", tc.method, res)
		}
	}
}

func TestResolve_NamedAction(t *testing.T) {
	res := Resolve(http.MethodPost, "authenticate", "")
	if res.Action != "authenticate" || res.HasID {
		t.Fatalf("unexpected resolution: %+v", res)
	}

	res = Resolve(http.MethodGet, "statuses", "extra")
	if res.Action != "statuses" || res.Param != "extra" {
		t.Fatalf("param not passed through: %+v", res)
	}
}

func TestResolve_Collection(t *testing.T) {
	if res := Resolve(http.MethodGet, "", ""); res.Action != "index" || res.HasID {
		t.Fatalf("GET collection: %+v", res)
	}
	if res := Resolve(http.MethodPost, "", ""); res.Action != "store" {
		t.Fatalf("POST collection: %+v", res)
	}
	if res := Resolve(http.MethodPut, "", ""); res.Action != "update" || res.HasID {
		t.Fatalf("PUT collection: %+v", res)
	}
}

func TestResolve_UnmappedMethod(t *testing.T) {
	// An unmapped method falls through as its own action name.
	if res := Resolve("HEAD", "", ""); res.Action != "HEAD" {
		t.Fatalf("expected HEAD to surface as an action, got %+v", res)
	}
}

func TestTable_UnknownActionIs404(t *testing.T) {
	e := echo.New()
	table := NewTable()
	table.Register("index", func(c echo.Context, res Resolution) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("segment")
	c.SetParamValues("bogus")

	if err := table.Handle(c); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "Action 'bogus' not found" {
		t.Fatalf("error body must name the action: %q", body["error"])
	}
}

func TestTable_DispatchesRegisteredAction(t *testing.T) {
	e := echo.New()
	table := NewTable()

	var got Resolution
	table.Register("show", func(c echo.Context, res Resolution) error {
		got = res
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("segment")
	c.SetParamValues("42")

	if err := table.Handle(c); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.ID != 42 || !got.HasID {
		t.Fatalf("resolution not passed to handler: %+v", got)
	}
}
