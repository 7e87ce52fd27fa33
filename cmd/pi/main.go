// Command pi is the interactive λΠ interpreter's REPL: a small
// flag.Bool/flag.Usage surface wrapping one evaluation loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pi-calculus/pi/internal/ctx"
	"github.com/pi-calculus/pi/internal/persist"
	"github.com/pi-calculus/pi/internal/repl"
)

var (
	file  = flag.String("file", "", "run statements from this file instead of stdin, non-interactively")
	debug = flag.Bool("debug", false, "pretty-print each parsed statement's AST before running it")
	load  = flag.String("load", "", "restore the context from this bbolt database on startup")
	save  = flag.String("save", "", "persist the context to this bbolt database on exit")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: pi [-file path] [-debug] [-load path] [-save path]\n\n")
	fmt.Fprint(os.Stderr, "pi is an interactive interpreter for a small dependently-typed\n")
	fmt.Fprint(os.Stderr, "lambda calculus, in the spirit of λΠ.\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	c := ctx.New()
	if *load != "" {
		loaded, err := persist.Load(*load)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		c = loaded
	}

	session := repl.New(c, os.Stdout, os.Stderr)
	session.Debug = *debug

	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		session.Run(f, false)
	} else {
		session.Run(os.Stdin, true)
	}

	if *save != "" {
		if err := persist.Save(*save, c); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
