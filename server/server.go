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

// Package server provides the HTTP interface of the mat generator.
//
// The routes are
//
//	GET /health
//	GET /qualification/{dir}    open challenge
//	GET /final/{dir}            obstacle challenge
//
// where dir is "cw" or "ccw".  The mat routes accept the query parameters
// format (png, bmp or tiff), width (scale the image down to the given
// number of pixels) and debug (if set to 1, the scheme is returned as
// JSON instead of the image).
package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"seehuhn.de/go/wromat"
	"seehuhn.de/go/wromat/encode"
	"seehuhn.de/go/wromat/mat"
	"seehuhn.de/go/wromat/scheme"
)

// Config holds the settings of the HTTP layer.
type Config struct {
	// CORSOrigins lists the origins which may fetch mats from a browser.
	// An empty list allows all origins.
	CORSOrigins []string
}

// NewRouter returns the router serving mats produced by gen.
func NewRouter(gen *wromat.Generator, cfg Config) chi.Router {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		ExposedHeaders: []string{"X-Scheme-Id"},
		MaxAge:         300,
	}))

	h := &handler{gen: gen}
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/qualification/{dir:cw|ccw}", h.mat(scheme.Open))
	r.Get("/final/{dir:cw|ccw}", h.mat(scheme.Obstacle))

	return r
}

type handler struct {
	gen *wromat.Generator
}

type debugResponse struct {
	ID     string         `json:"id"`
	Scheme *scheme.Scheme `json:"scheme"`
}

func (h *handler) mat(kind scheme.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := mat.ParseDirection(chi.URLParam(r, "dir"))
		if err != nil {
			errorJSON(w, http.StatusNotFound, err.Error())
			return
		}

		q := r.URL.Query()
		format, err := encode.ParseFormat(q.Get("format"))
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		width := 0
		if v := q.Get("width"); v != "" {
			width, err = strconv.Atoi(v)
			if err != nil || width <= 0 || width > h.gen.Geometry().Size() {
				errorJSON(w, http.StatusBadRequest, "invalid width "+strconv.Quote(v))
				return
			}
		}

		s, err := h.gen.NewScheme(kind, dir)
		if err != nil {
			log.Printf("[%s] %v", middleware.GetReqID(r.Context()), err)
			errorJSON(w, http.StatusInternalServerError, "cannot generate mat")
			return
		}

		id := uuid.New().String()
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("X-Scheme-Id", id)

		if q.Get("debug") == "1" {
			writeJSON(w, http.StatusOK, debugResponse{ID: id, Scheme: s})
			return
		}

		img := encode.Scale(h.gen.Render(s), width)
		buf := &bytes.Buffer{}
		if err := encode.Encode(buf, img, format); err != nil {
			log.Printf("[%s] encoding %s: %v", middleware.GetReqID(r.Context()), format, err)
			errorJSON(w, http.StatusInternalServerError, "cannot encode image")
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiError{Error: msg})
}
