// Copyright 2019 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
interval-union parses textual interval tokens ("100-200", "-10 - -5", ...)
into an interval set, optionally collapses overlapping intervals into their
minimal union, and reports the result as TSV, one row per interval.  With
-edges it instead prints the bin-edge list of the (sorted) set, which must
be contiguous.
*/

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/intervals/interval"
	"github.com/klauspost/compress/gzip"
)

var (
	input     = flag.String("input", "", "Path to a file of interval tokens, comma- or newline-separated; tokens may also be passed as positional arguments.  .gz input is decompressed transparently")
	merge     = flag.Bool("merge", false, "Collapse overlapping intervals into their minimal union before reporting")
	edgesOnly = flag.Bool("edges", false, "Print the bin edges of the sorted set instead of per-interval rows; the set must be contiguous")
)

func intervalUnionUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [token]...\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

// readTokens loads interval tokens from path, splitting on commas and
// newlines and dropping empty fields.
func readTokens(path string) (tokens []string, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	var data []byte
	if data, err = ioutil.ReadAll(reader); err != nil {
		return
	}
	for _, field := range strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	}) {
		if field = strings.TrimSpace(field); field != "" {
			tokens = append(tokens, field)
		}
	}
	return
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func main() {
	flag.Usage = intervalUnionUsage
	shutdown := grail.Init()
	defer shutdown()

	tokens := flag.Args()
	if *input != "" {
		fileTokens, err := readTokens(*input)
		if err != nil {
			log.Fatalf("interval-union: %v", err)
		}
		tokens = append(fileTokens, tokens...)
	}
	if len(tokens) == 0 {
		intervalUnionUsage()
		os.Exit(1)
	}

	set, err := interval.FromStrings(tokens...)
	if err != nil {
		log.Fatalf("interval-union: %v", err)
	}
	if *merge {
		nBefore := set.Len()
		set.MergeIntersectingInPlace()
		log.Printf("interval-union: merged %d interval(s) into %d\n", nBefore, set.Len())
	}

	w := tsv.NewWriter(os.Stdout)
	if *edgesOnly {
		edges, err := set.Edges()
		if err != nil {
			log.Fatalf("interval-union: %v", err)
		}
		for _, e := range edges {
			w.WriteString(formatFloat(e))
			w.EndLine()
		}
	} else {
		w.WriteString("index")
		w.WriteString("start")
		w.WriteString("stop")
		w.WriteString("width")
		w.WriteString("mid")
		w.EndLine()
		for i := 0; i < set.Len(); i++ {
			iv := set.At(i)
			w.WriteUint32(uint32(i))
			w.WriteString(formatFloat(iv.Start()))
			w.WriteString(formatFloat(iv.Stop()))
			w.WriteString(formatFloat(iv.Width()))
			w.WriteString(formatFloat(iv.MidPoint()))
			w.EndLine()
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("interval-union: %v", err)
	}
}
