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

package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings of the server, read from the environment.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxAttempts  int
	Seed         uint64
	CORSOrigins  []string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	cfg := Config{
		Addr:         getEnv("MATGEN_ADDR", ":8080"),
		ReadTimeout:  parseDuration(getEnv("MATGEN_READ_TIMEOUT", "15s"), 15*time.Second),
		WriteTimeout: parseDuration(getEnv("MATGEN_WRITE_TIMEOUT", "30s"), 30*time.Second),
		MaxAttempts:  parseInt(getEnv("MATGEN_MAX_ATTEMPTS", "10000"), 10000),
		CORSOrigins:  splitList(getEnv("MATGEN_CORS_ORIGINS", "")),
	}
	if v := getEnv("MATGEN_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			log.Printf("[WARN] ignoring invalid MATGEN_SEED %q", v)
		} else {
			cfg.Seed = seed
			log.Println("[WARN] MATGEN_SEED is set; mats are reproducible")
		}
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
