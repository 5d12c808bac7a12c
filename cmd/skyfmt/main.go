// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program skyfmt reads JSON documents and writes them back out in compact or
// indented form.
//
// Usage:
//
//	skyfmt [flags] [file ...]
//
// With no file arguments, or with the argument "-", skyfmt reads standard
// input. Each input may contain any number of documents separated by
// whitespace. Each document is parsed into a fresh generation of a single
// arena; if a document does not fit, the arena is doubled and the document
// is tried once more.
//
// The default arena size may be set with the SKYFMT_ARENA_SIZE environment
// variable, e.g., SKYFMT_ARENA_SIZE=64MB.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/creachadair/skyjson"
	"github.com/creachadair/skyjson/arena"
	"github.com/creachadair/skyjson/cursor"
	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

const arenaSizeEnv = "SKYFMT_ARENA_SIZE"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyfmt: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	arenaSize := datasize.ByteSize(arena.DefaultCapacity)
	if v := os.Getenv(arenaSizeEnv); v != "" {
		if err := arenaSize.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid %s: %w", arenaSizeEnv, err)
		}
	}

	indent := flag.Bool("indent", false, "Write indented output instead of compact")
	useHuJSON := flag.Bool("hujson", false, "Accept comments and trailing commas in the input")
	path := flag.String("path", "", "Write only the value at this slash-separated path (e.g., items/0/name)")
	verbose := flag.Bool("v", false, "Log arena statistics for each document (same as -log-level=debug)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.TextVar(&arenaSize, "arena-size", arenaSize, "Arena capacity (e.g., 512KB, 16MB); env "+arenaSizeEnv)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	if *verbose {
		ll.Set(slog.LevelDebug)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	if arenaSize.Bytes() == 0 || arenaSize.Bytes() > 1<<40 {
		return fmt.Errorf("invalid arena size %v", arenaSize)
	}
	t := &tool{
		arena:  arena.New(int(arenaSize.Bytes())),
		indent: *indent,
		hujson: *useHuJSON,
		path:   parsePath(*path),
		log:    logger,
	}

	out := bufio.NewWriter(os.Stdout)
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		data, err := readInput(name)
		if err != nil {
			return err
		}
		if err := t.process(out, name, data); err != nil {
			out.Flush()
			return err
		}
	}
	return out.Flush()
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// parsePath splits a slash-separated path into cursor path elements.
// Elements that parse as integers are array or object offsets; all others
// are member names.
func parsePath(s string) []any {
	if s == "" {
		return nil
	}
	var path []any
	for _, elt := range strings.Split(s, "/") {
		if n, err := strconv.Atoi(elt); err == nil {
			path = append(path, n)
		} else {
			path = append(path, elt)
		}
	}
	return path
}

// A tool carries the settings for formatting documents.
type tool struct {
	arena  *arena.Arena
	indent bool
	hujson bool
	path   []any
	log    *slog.Logger
}

// process formats each document in data and writes the results to w.
func (t *tool) process(w io.Writer, name string, data []byte) error {
	if t.hujson {
		std, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		data = std
	}

	for pos, doc := 0, 0; ; doc++ {
		c := skyjson.NewCursorBytes(data[pos:])
		c.SkipSpace()
		if c.AtEnd() {
			return nil
		}
		start := pos + c.Pos()

		out, end, err := t.formatDoc(data, start)
		if errors.Is(err, skyjson.NoSpace) {
			next := 2 * t.arena.Cap()
			t.log.Warn("arena exhausted, retrying",
				"file", name, "doc", doc, "cap", humanize.IBytes(uint64(t.arena.Cap())),
				"retry", humanize.IBytes(uint64(next)))
			t.arena = arena.New(next)
			out, end, err = t.formatDoc(data, start)
		}
		if err != nil {
			var ie inputError
			if errors.As(err, &ie) {
				lc := locate(data, start+ie.err.Offset)
				return fmt.Errorf("%s:%d:%d: document %d: %v", name, lc.Line, lc.Column, doc, ie.err.Code)
			}
			var e *skyjson.Error
			if errors.As(err, &e) {
				// Offsets of output errors do not refer to the input.
				return fmt.Errorf("%s: document %d: output: %v", name, doc, e.Code)
			}
			return fmt.Errorf("%s: document %d: %w", name, doc, err)
		}
		t.log.Debug("formatted document",
			"file", name, "doc", doc,
			"input", humanize.IBytes(uint64(end-start)),
			"arena", humanize.IBytes(uint64(t.arena.Len())),
			"peak", humanize.IBytes(uint64(t.arena.Peak())),
			"cap", humanize.IBytes(uint64(t.arena.Cap())),
			"generation", t.arena.Generation(),
		)
		if _, err := w.Write(out); err != nil {
			return err
		}
		pos = end
	}
}

// An inputError is a failure to parse a document. Its offset is relative to
// the start of the document.
type inputError struct{ err *skyjson.Error }

func (e inputError) Error() string { return e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

// formatDoc parses one document starting at offset start of data into a
// fresh generation of the arena, and renders its output. It returns the
// offset of the end of the document in data.
func (t *tool) formatDoc(data []byte, start int) ([]byte, int, error) {
	t.arena.Reset()
	c := skyjson.NewCursorBytes(data[start:])
	v, err := skyjson.Parse(t.arena, c)
	if err != nil {
		var e *skyjson.Error
		if errors.As(err, &e) {
			return nil, start, inputError{err: e}
		}
		return nil, start, err
	}
	end := start + c.Pos()

	if len(t.path) != 0 {
		cur := cursor.New(v).Down(t.path...)
		if err := cur.Err(); err != nil {
			return nil, end, fmt.Errorf("path: %w", err)
		}
		v = cur.Value()
	}

	if t.indent {
		var buf strings.Builder
		if err := skyjson.Indent(&buf, v); err != nil {
			return nil, end, err
		}
		return []byte(buf.String()), end, nil
	}
	s, err := skyjson.Format(t.arena, v)
	if err != nil {
		return nil, end, err
	}
	return append(s.Bytes(), '\n'), end, nil
}
