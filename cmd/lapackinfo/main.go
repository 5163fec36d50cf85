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

// lapackinfo prints which backend serves each element type, the routines
// it binds, and the CPU features the process sees. Useful for checking
// whether a build picked up the cgo bindings or fell back to pure Go.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-lapack/lapack"
)

func main() {
	root := &cobra.Command{
		Use:   "lapackinfo",
		Short: "Report LAPACK backend registration and CPU features",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBackends()
			return nil
		},
	}

	var verbose bool
	routines := &cobra.Command{
		Use:   "routines",
		Short: "List the routines each backend binds",
		RunE: func(cmd *cobra.Command, args []string) error {
			printRoutines(verbose)
			return nil
		},
	}
	routines.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every routine name")

	cpuCmd := &cobra.Command{
		Use:   "cpu",
		Short: "Print the CPU features detected by golang.org/x/sys",
		RunE: func(cmd *cobra.Command, args []string) error {
			printCPU()
			return nil
		},
	}

	root.AddCommand(routines, cpuCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func printBackends() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()
	fmt.Printf("float32:    %s\n", backendOrNone(lapack.Backend[float32]()))
	fmt.Printf("float64:    %s\n", backendOrNone(lapack.Backend[float64]()))
	fmt.Printf("complex64:  %s\n", backendOrNone(lapack.Backend[complex64]()))
	fmt.Printf("complex128: %s\n", backendOrNone(lapack.Backend[complex128]()))
}

func backendOrNone(name string) string {
	if name == "" {
		return "(none)"
	}
	return name
}

func printRoutines(verbose bool) {
	printTypeRoutines[float32]("float32", verbose)
	printTypeRoutines[float64]("float64", verbose)
	printTypeRoutines[complex64]("complex64", verbose)
	printTypeRoutines[complex128]("complex128", verbose)
}

func printTypeRoutines[T lapack.Scalar](name string, verbose bool) {
	bound := lapack.Routines[T]()
	fmt.Printf("%s (%s): %d routines\n", name, backendOrNone(lapack.Backend[T]()), len(bound))
	if !verbose {
		return
	}
	for _, r := range bound {
		fmt.Printf("  %s\n", r)
	}
}

func printCPU() {
	switch runtime.GOARCH {
	case "arm64":
		fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
		fmt.Printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
		fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
		fmt.Printf("  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
		fmt.Printf("  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
	case "amd64":
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
		fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
		fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	default:
		fmt.Printf("no feature probe for %s\n", runtime.GOARCH)
	}
}
