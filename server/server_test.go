// seehuhn.de/go/wromat - randomized game mat schematics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/image/bmp"

	"seehuhn.de/go/wromat"
	"seehuhn.de/go/wromat/mat"
)

func newTestServer(t *testing.T, opts *wromat.Options) *httptest.Server {
	t.Helper()
	gen, err := wromat.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(NewRouter(gen, Config{}))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, header ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &wromat.Options{Seed: 1})
	res := get(t, ts.URL+"/health")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestImage(t *testing.T) {
	ts := newTestServer(t, &wromat.Options{Seed: 2})

	res := get(t, ts.URL+"/qualification/cw?width=151")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	if cc := res.Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("cache control %q", cc)
	}
	if _, err := uuid.Parse(res.Header.Get("X-Scheme-Id")); err != nil {
		t.Errorf("scheme id: %v", err)
	}
	img, err := png.Decode(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 151 || b.Dy() != 151 {
		t.Errorf("image size %v", b)
	}

	res = get(t, ts.URL+"/final/ccw?format=bmp&width=64")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "image/bmp" {
		t.Errorf("content type %q", ct)
	}
	img, err = bmp.Decode(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 {
		t.Errorf("image size %v", b)
	}
}

func TestDebug(t *testing.T) {
	ts := newTestServer(t, &wromat.Options{Seed: 3})

	res := get(t, ts.URL+"/final/cw?debug=1")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body struct {
		ID     string
		Scheme struct {
			Kind      string
			Direction string
			Obstacles map[string]int
		}
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.ID != res.Header.Get("X-Scheme-Id") {
		t.Errorf("ids differ: %q vs %q", body.ID, res.Header.Get("X-Scheme-Id"))
	}
	if body.Scheme.Kind != "obstacle" || body.Scheme.Direction != "cw" || len(body.Scheme.Obstacles) != 4 {
		t.Errorf("unexpected scheme %+v", body.Scheme)
	}
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t, &wromat.Options{Seed: 4})

	cases := []struct {
		path   string
		status int
	}{
		{"/final/left", http.StatusNotFound},
		{"/semifinal/cw", http.StatusNotFound},
		{"/qualification/cw?format=gif", http.StatusBadRequest},
		{"/qualification/cw?width=abc", http.StatusBadRequest},
		{"/qualification/cw?width=-5", http.StatusBadRequest},
		{"/final/ccw?width=100000", http.StatusBadRequest},
	}
	for _, c := range cases {
		res := get(t, ts.URL+c.path)
		if res.StatusCode != c.status {
			t.Errorf("%s: got status %d, want %d", c.path, res.StatusCode, c.status)
		}
	}
}

func TestExhausted(t *testing.T) {
	cat := &mat.Catalog{
		Sets: []mat.ObstacleSet{
			{{Position: mat.X2, Color: mat.Red}},
			{{Position: mat.T1, Color: mat.Red}},
			{{Position: mat.T2, Color: mat.Red}},
			{{Position: mat.T3, Color: mat.Red}},
		},
		Mandatory: map[mat.Color]int{mat.Red: 0},
		Required:  []int{1},
	}
	ts := newTestServer(t, &wromat.Options{Catalog: cat, MaxAttempts: 10})

	res := get(t, ts.URL+"/final/cw")
	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status %d", res.StatusCode)
	}
	if res.Header.Get("X-Scheme-Id") != "" {
		t.Error("failed request has a scheme id")
	}
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, &wromat.Options{Seed: 5})
	res := get(t, ts.URL+"/qualification/ccw?debug=1", "Origin", "https://example.com")
	if res.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Error("missing CORS header")
	}
}
