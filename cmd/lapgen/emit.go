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

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// expansion is one element-type instantiation of the catalog.
type expansion struct {
	letter string // Fortran prefix: s, d, c, z
	table  string // kernel table: S, D, C, Z
	elem   string // Go element type
	narrow bool   // float64 auxiliaries round-trip through float32
	cplx   bool   // use cplxBase/cplxCall
}

var expansions = []expansion{
	{letter: "s", table: "S", elem: "float32", narrow: true},
	{letter: "d", table: "D", elem: "float64"},
	{letter: "c", table: "C", elem: "complex64", narrow: true, cplx: true},
	{letter: "z", table: "Z", elem: "complex128", cplx: true},
}

var titler = cases.Title(language.Und)

// fieldName maps a Fortran stem to its kernel.Table field.
func fieldName(r routine) string {
	if r.field != "" {
		return r.field
	}
	return titler.String(r.base)
}

// symbol is the Fortran entry point for one expansion.
func (r routine) symbol(x expansion) string {
	base := r.base
	if x.cplx && r.cplxBase != "" {
		base = r.cplxBase
	}
	return x.letter + base + "_"
}

func (r routine) callSeq(x expansion) []string {
	if x.cplx && r.cplxCall != nil {
		return r.cplxCall
	}
	return r.realCall
}

func (r routine) post(x expansion) string {
	if x.cplx {
		return r.cplxPost
	}
	return r.realPost
}

func (r routine) bound(x expansion) bool {
	return !(r.realOnly && x.cplx)
}

func (r routine) param(name string) (arg, bool) {
	for _, p := range r.params {
		if p.name == name {
			return p, true
		}
	}
	return arg{}, false
}

// normReturn is the C return type of the one non-subroutine per letter.
func normReturn(letter string) string {
	if letter == "s" || letter == "c" {
		return "float"
	}
	return "double"
}

const headerTmpl = `// Copyright 2026 go-lapack Authors
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

// Code generated by lapgen. DO NOT EDIT.

//go:build cgo && lapack_cgo

package fortran

/*
#cgo LDFLAGS: -llapack

typedef void* P;

{{range .Protos}}{{.}}
{{end}}*/
import "C"

import (
	"github.com/ajroetker/go-lapack/internal/kernel"
)
`

// goType is the Go parameter type for one arg kind.
func goType(k kind, elem string) string {
	switch k {
	case kFlag:
		return "byte"
	case kDim:
		return "int"
	case kElem:
		return "[]" + elem
	case kReal:
		return "[]float64"
	case kIntScratch, kPivIn, kPivOut:
		return "[]int"
	case kRScalar:
		return "float64"
	case kROut:
		return "*float64"
	case kIOut:
		return "*int"
	}
	panic(fmt.Sprintf("lapgen: unknown kind %d", k))
}

// dimLocal gives the int32 locals the short names the Fortran docs use.
var dimLocal = map[string]string{
	"m": "mm", "n": "nn", "k": "kk", "nrhs": "nr",
	"lda": "ld", "ldb": "lb", "ldc": "lc", "ldz": "lz", "ldab": "lab",
	"ldu": "lu", "ldvt": "lvt", "ldvl": "lvl", "ldvr": "lvr", "ldvs": "lvs",
	"lwork": "lw", "lrwork": "lr", "liwork": "li",
	"ilo": "lo", "ihi": "hi", "il": "fil", "iu": "fiu",
	"ncvt": "nv", "nru": "nru_", "ncc": "nc",
}

func local(name string) string {
	if v, ok := dimLocal[name]; ok {
		return v
	}
	return name + "_"
}

// emit renders the full generated file for the catalog.
func emit(cat []routine) ([]byte, error) {
	var protos []string
	for _, x := range expansions {
		for _, r := range cat {
			if !r.bound(x) {
				continue
			}
			arity := len(r.callSeq(x))
			if !r.retNorm {
				arity++ // trailing info
			}
			ret := "void"
			if r.retNorm {
				ret = normReturn(x.letter)
			}
			ps := strings.TrimSuffix(strings.Repeat("P,", arity), ",")
			protos = append(protos, fmt.Sprintf("extern %s %s(%s);", ret, r.symbol(x), ps))
		}
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("header").Parse(headerTmpl))
	if err := tmpl.Execute(&buf, struct{ Protos []string }{protos}); err != nil {
		return nil, err
	}

	for _, x := range expansions {
		fmt.Fprintf(&buf, "\nfunc register%s() {\n", x.table)
		fmt.Fprintf(&buf, "kernel.%s = kernel.Table[%s]{\n", x.table, x.elem)
		fmt.Fprintf(&buf, "Backend: %q,\n", "fortran")
		for _, r := range cat {
			if !r.bound(x) {
				continue
			}
			if err := emitWrapper(&buf, r, x); err != nil {
				return nil, err
			}
		}
		fmt.Fprintf(&buf, "}\n}\n")
		log.Debug().Str("table", x.table).Msg("expanded")
	}
	return buf.Bytes(), nil
}

// emitWrapper renders one table field: the closure signature, argument
// lowering, the cgo call, and the write-backs.
func emitWrapper(buf *bytes.Buffer, r routine, x expansion) error {
	call := r.callSeq(x)
	passed := make(map[string]bool, len(call))
	for _, name := range call {
		passed[name] = true
	}

	// Signature. Parameters outside the active calling sequence are
	// received for seam compatibility; they are blanked unless the post
	// snippet reads them.
	var sig []string
	for _, p := range r.params {
		name := p.name
		if !passed[name] && !strings.Contains(r.post(x), p.name) {
			name = "_"
		}
		sig = append(sig, name+" "+goType(p.kind, x.elem))
	}
	ret := "int"
	if r.retNorm {
		ret = "float64"
	}
	fmt.Fprintf(buf, "%s: func(%s) %s {\n", fieldName(r), strings.Join(sig, ", "), ret)

	// Lowering, in parameter order: int32 dims first, then the rest.
	var dims, vals []string
	for _, p := range r.params {
		if !passed[p.name] {
			continue
		}
		if p.kind == kDim {
			expr := p.name
			if p.shift != 0 {
				expr = fmt.Sprintf("%s+%d", p.name, p.shift)
			}
			dims = append(dims, fmt.Sprintf("%s := int32(%s)", local(p.name), expr))
			continue
		}
		switch p.kind {
		case kReal:
			if x.narrow {
				vals = append(vals, fmt.Sprintf("%s := f32(%s)", local(p.name), p.name))
			}
		case kIntScratch:
			vals = append(vals, fmt.Sprintf("%s := i32(len(%s))", local(p.name), p.name))
		case kPivIn:
			vals = append(vals, fmt.Sprintf("%s := fpiv(%s)", local(p.name), p.name))
		case kPivOut:
			vals = append(vals, fmt.Sprintf("%s := i32(len(%s))", local(p.name), p.name))
		case kRScalar:
			if x.narrow {
				vals = append(vals, fmt.Sprintf("%s := float32(%s)", local(p.name), p.name))
			}
		case kROut:
			if x.narrow {
				vals = append(vals, fmt.Sprintf("var %s float32", local(p.name)))
			}
		case kIOut:
			vals = append(vals, fmt.Sprintf("var %s int32", local(p.name)))
		}
	}
	for _, d := range dims {
		fmt.Fprintln(buf, d)
	}
	for _, v := range vals {
		fmt.Fprintln(buf, v)
	}

	// Pseudo arguments and the call itself.
	var args []string
	for _, name := range call {
		switch name {
		case argSortN:
			fmt.Fprintln(buf, "sort_ := byte('N')")
			args = append(args, "pt(&sort_)")
		case argNull:
			args = append(args, "nil")
		case argSdim:
			fmt.Fprintln(buf, "var sdim_ int32")
			args = append(args, "pt(&sdim_)")
		case argBwork:
			fmt.Fprintln(buf, "bwork_ := i32(1)")
			args = append(args, "pv(bwork_)")
		case argDumE:
			fmt.Fprintf(buf, "q_ := make([]%s, 1)\n", x.elem)
			args = append(args, "pv(q_)")
		case argDumI:
			fmt.Fprintln(buf, "iq_ := i32(1)")
			args = append(args, "pv(iq_)")
		default:
			p, ok := r.param(name)
			if !ok {
				return fmt.Errorf("%s: calling sequence names unknown parameter %q", r.base, name)
			}
			args = append(args, argExpr(p, x))
		}
	}

	if r.retNorm {
		fmt.Fprintf(buf, "return float64(C.%s(%s))\n", r.symbol(x), strings.Join(args, ", "))
		fmt.Fprintf(buf, "},\n")
		return nil
	}

	fmt.Fprintln(buf, "var info int32")
	args = append(args, "pt(&info)")
	fmt.Fprintf(buf, "C.%s(%s)\n", r.symbol(x), strings.Join(args, ", "))

	// Write-backs.
	for _, p := range r.params {
		if !passed[p.name] {
			continue
		}
		switch p.kind {
		case kReal:
			if x.narrow && p.out {
				fmt.Fprintf(buf, "f64(%s, %s)\n", p.name, local(p.name))
			}
		case kPivOut:
			fmt.Fprintf(buf, "gpiv(%s, %s)\n", p.name, local(p.name))
		case kROut:
			if x.narrow {
				fmt.Fprintf(buf, "*%s = float64(%s)\n", p.name, local(p.name))
			}
		case kIOut:
			fmt.Fprintf(buf, "*%s = int(%s)\n", p.name, local(p.name))
		}
	}
	if post := r.post(x); post != "" {
		fmt.Fprintln(buf, post)
	}
	fmt.Fprintln(buf, "return int(info)")
	fmt.Fprintf(buf, "},\n")
	return nil
}

// argExpr is the cgo argument expression for one passed parameter.
func argExpr(p arg, x expansion) string {
	switch p.kind {
	case kFlag:
		return fmt.Sprintf("pt(&%s)", p.name)
	case kDim:
		return fmt.Sprintf("pt(&%s)", local(p.name))
	case kElem:
		return fmt.Sprintf("pv(%s)", p.name)
	case kReal:
		if x.narrow {
			return fmt.Sprintf("pv(%s)", local(p.name))
		}
		return fmt.Sprintf("pv(%s)", p.name)
	case kIntScratch, kPivIn, kPivOut:
		return fmt.Sprintf("pv(%s)", local(p.name))
	case kRScalar:
		if x.narrow {
			return fmt.Sprintf("pt(&%s)", local(p.name))
		}
		return fmt.Sprintf("pt(&%s)", p.name)
	case kROut:
		if x.narrow {
			return fmt.Sprintf("pt(&%s)", local(p.name))
		}
		return fmt.Sprintf("pt(%s)", p.name)
	case kIOut:
		return fmt.Sprintf("pt(&%s)", local(p.name))
	}
	panic(fmt.Sprintf("lapgen: unknown kind %d", p.kind))
}
