package jsonable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MSyics/Jsonable/dyn"
)

func TestHasProblem(t *testing.T) {
	tests := []struct {
		ct   string
		want bool
	}{
		{"application/problem+json", true},
		{"application/problem+json; charset=utf-8", true},
		{"application/json", false},
		{"", false},
	}
	for _, tt := range tests {
		resp := &http.Response{Header: http.Header{}}
		resp.Header.Set("Content-Type", tt.ct)
		if got := HasProblem(resp); got != tt.want {
			t.Errorf("HasProblem(%q) = %v, want %v", tt.ct, got, tt.want)
		}
	}
	if HasProblem(nil) {
		t.Error("HasProblem(nil) = true")
	}
}

func TestReadResponseNoBody(t *testing.T) {
	v, err := ReadResponse(&http.Response{Body: http.NoBody})
	if v != nil || err != nil {
		t.Errorf("got %v, %v", v, err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept"), "application/json") {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		switch r.URL.Path {
		case "/problem":
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"title":"bad","status":400}`))
		case "/broken":
			w.Write([]byte(`{"a":`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"id":1}]}`))
		}
	}))
	defer srv.Close()

	v, resp, err := Fetch(context.Background(), srv.Client(), srv.URL+"/ok")
	if err != nil {
		t.Fatal(err)
	}
	if HasProblem(resp) {
		t.Error("ok response reported as problem")
	}
	items := v.(*dyn.Node).Get("items").([]any)
	if got := items[0].(*dyn.Node).Get("id"); got != 1.0 {
		t.Errorf("items[0].id = %v", got)
	}

	v, resp, err = Fetch(context.Background(), nil, srv.URL+"/problem")
	if err != nil {
		t.Fatal(err)
	}
	if !HasProblem(resp) || resp.StatusCode != http.StatusBadRequest {
		t.Errorf("problem response not detected: %v", resp.Header)
	}
	if got := v.(*dyn.Node).Get("title"); got != "bad" {
		t.Errorf("title = %v", got)
	}

	if _, _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/broken"); err == nil {
		t.Error("expected parse error")
	}
}
