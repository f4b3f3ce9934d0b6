/*
shgen is a console utility generating GNU source-highlight language and style
definitions from the built-in lexer-grammar database.
Usage is

	shgen [-o <dir>] [-l <name>] [-s <name>] [-k] [-v]

-o <dir> defines the output directory, default is share/source-highlight;

-l <name> restricts generation to a single language display name;

-s <name> restricts generation to a single style name;

-k keeps a batch running when a language fails to translate;

-v enables debug tracing.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/seanpm2001/go-source-highlight/gen"
)

var (
	outDir, langName, styleName string
	keepGoing, verbose          bool
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  shgen [-o <dir>] [-l <name>] [-s <name>] [-k] [-v]")
		flag.PrintDefaults()
	}

	flag.StringVar(&outDir, "o", "share/source-highlight", "output directory")
	flag.StringVar(&langName, "l", "", "generate a single language, default is every registered language")
	flag.StringVar(&styleName, "s", "", "generate a single style, default is every chroma style")
	flag.BoolVar(&keepGoing, "k", false, "keep going when a language fails to translate")
	flag.BoolVar(&verbose, "v", false, "enable debug tracing")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	opts := gen.Options{OutDir: outDir, ContinueOnError: keepGoing}
	if langName != "" {
		opts.Languages = []string{langName}
	}
	if styleName != "" {
		opts.Styles = []string{styleName}
	}

	e := os.MkdirAll(outDir, 0o777)
	if e == nil {
		e = gen.All(opts)
	}
	if e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}
}
