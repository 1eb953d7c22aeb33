// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command quotes prints up to three random quotes for a topic.
//
//	quotes -topic happy
//	quotes -list
//	quotes -catalog my-quotes.yaml -topic calm -seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-quote/quotes"
)

type options struct {
	topic   string
	list    bool
	catalog string
	seed    uint64
	noColor bool
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("quotes", flag.ContinueOnError)
	fs.StringVar(&opts.topic, "topic", "", "Topic to draw from (default: general)")
	fs.BoolVar(&opts.list, "list", false, "List topics and exit")
	fs.StringVar(&opts.catalog, "catalog", "", "YAML catalog file (default: built-in)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible pick (0 = random)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

type printer struct {
	out   io.Writer
	quote *color.Color
	dim   *color.Color
}

func newPrinter(out io.Writer, noColor bool) *printer {
	p := &printer{
		out:   out,
		quote: color.New(color.FgGreen),
		dim:   color.New(color.Faint),
	}
	if noColor {
		p.quote.DisableColor()
		p.dim.DisableColor()
	}
	return p
}

func (p *printer) topics(catalog *quotes.Catalog) {
	for _, name := range catalog.Topics() {
		fmt.Fprintf(p.out, "%-12s ", name)
		p.dim.Fprintf(p.out, "%d quotes\n", catalog.Count(name))
	}
}

func (p *printer) selection(sel quotes.Selection) {
	if sel.Fallback {
		p.dim.Fprintf(p.out, "No quotes for %q, showing %s quotes\n", sel.Requested, sel.Topic)
	} else {
		p.dim.Fprintf(p.out, "%s\n", sel.Topic)
	}
	for _, q := range sel.Quotes {
		p.quote.Fprintf(p.out, "  %s\n", q)
	}
}

func run(args []string, out io.Writer, isTerminal bool) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	catalog := quotes.Default()
	if opts.catalog != "" {
		catalog, err = quotes.LoadFile(opts.catalog)
		if err != nil {
			return err
		}
	}

	p := newPrinter(out, opts.noColor || !isTerminal)

	if opts.list {
		p.topics(catalog)
		return nil
	}

	var rnd quotes.RandomIndex
	if opts.seed != 0 {
		rnd = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	p.selection(quotes.NewSelector(catalog, rnd).Select(opts.topic))
	return nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "quotes"})

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := run(os.Args[1:], os.Stdout, tty); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}
