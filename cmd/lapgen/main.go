// Copyright 2026 go-lapack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// lapgen emits the cgo wrappers that bind a Fortran LAPACK library to the
// internal/kernel tables. The routine catalog in routines.go is the single
// source of truth: each entry describes the Go-side signature of one
// kernel.Table field and the Fortran calling sequence it maps to, and the
// emitter expands it four ways, once per element type.
//
// Usage:
//
//	go run ./cmd/lapgen -out internal/fortran/z_fortran.go
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/imports"
)

func main() {
	out := flag.String("out", "internal/fortran/z_fortran.go", "output file")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	src, err := emit(catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("emit failed")
	}

	// imports.Process is gofmt plus import management, so the template
	// only has to be approximately formatted.
	formatted, err := imports.Process(*out, src, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("generated code does not parse")
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write failed")
	}
	log.Info().Str("out", *out).Int("routines", len(catalog)).Msg("generated")
}
