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

// Matserver serves random game mat schematics over HTTP.
//
// The server is configured through environment variables, which may also
// be given in a file ".env" in the working directory:
//
//	MATGEN_ADDR           listen address (default ":8080")
//	MATGEN_READ_TIMEOUT   (default 15s)
//	MATGEN_WRITE_TIMEOUT  (default 30s)
//	MATGEN_MAX_ATTEMPTS   retry limit of the obstacle randomizer (default 10000)
//	MATGEN_CORS_ORIGINS   comma separated list of allowed origins (default all)
//	MATGEN_SEED           fixed random seed, for testing
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"seehuhn.de/go/wromat"
	"seehuhn.de/go/wromat/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[WARN] reading .env: %v", err)
	}
	cfg := LoadConfig()

	opts := wromat.DefaultOptions()
	opts.MaxAttempts = cfg.MaxAttempts
	opts.Seed = cfg.Seed
	gen, err := wromat.New(opts)
	if err != nil {
		log.Fatalf("cannot build the mat template: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewRouter(gen, server.Config{CORSOrigins: cfg.CORSOrigins}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("ListenAndServe:", err)
	}
}
