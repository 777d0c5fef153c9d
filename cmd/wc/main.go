// Command wc counts lines, words, bytes, and characters in files or
// standard input, using the internal/engine counting core. It is a thin
// front end: every counting decision lives in internal/engine, not here.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nnnkkk7/go-wordcount/internal/engine"
)

// ErrNoSuchFile wraps an underlying open error with the failing path.
type ErrNoSuchFile struct {
	Path string
	Err  error
}

func (e *ErrNoSuchFile) Error() string {
	return fmt.Sprintf("wc: %s: %v", e.Path, e.Err)
}

func (e *ErrNoSuchFile) Unwrap() error {
	return e.Err
}

type options struct {
	lines       bool
	words       bool
	bytes       bool
	chars       bool
	maxLineLen  bool
	filesFrom   string
	anyExplicit bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wc: ")

	opts, files, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if opts.filesFrom != "" {
		more, err := readFiles0From(opts.filesFrom)
		if err != nil {
			log.Fatal(err)
		}
		files = append(files, more...)
	}

	loc := localeFromEnv()

	if len(files) == 0 {
		counts, err := countReader(os.Stdin, loc)
		if err != nil {
			log.Fatal(err)
		}
		printLine(opts, counts, "")
		return
	}

	var total engine.Counts
	exitCode := 0
	for _, path := range files {
		counts, err := countFile(path, loc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
			continue
		}
		printLine(opts, counts, path)
		total = engine.Merge(total, counts)
	}
	if len(files) > 1 {
		printLine(opts, total, "total")
	}
	os.Exit(exitCode)
}

// parseFlags defines and parses the GNU-wc-compatible flag set. It
// contains no counting logic; it only decides which Counts fields the
// caller wants printed.
func parseFlags(args []string) (options, []string, error) {
	fs := flag.NewFlagSet("wc", flag.ContinueOnError)
	var opts options
	fs.BoolVar(&opts.lines, "l", false, "print the newline count")
	fs.BoolVar(&opts.words, "w", false, "print the word count")
	fs.BoolVar(&opts.bytes, "c", false, "print the byte count")
	fs.BoolVar(&opts.chars, "m", false, "print the character count")
	fs.BoolVar(&opts.maxLineLen, "L", false, "print the maximum line length")
	fs.StringVar(&opts.filesFrom, "files0-from", "", "read NUL-terminated file names from FILE ('-' for stdin)")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	opts.anyExplicit = opts.lines || opts.words || opts.bytes || opts.chars || opts.maxLineLen
	if !opts.anyExplicit {
		opts.lines, opts.words, opts.bytes = true, true, true
	}

	return opts, fs.Args(), nil
}

// readFiles0From reads NUL-separated file names from path ("-" for
// stdin), the --files0-from convention borrowed from GNU wc. This
// belongs to the front end; internal/engine knows nothing about file
// names.
func readFiles0From(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, &ErrNoSuchFile{Path: path, Err: err}
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wc: reading %s: %w", path, err)
	}
	var names []string
	for _, name := range strings.Split(strings.TrimSuffix(string(data), "\x00"), "\x00") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// localeFromEnv mirrors GNU wc's environment-driven locale selection:
// UTF8 unless the environment explicitly requests the POSIX "C" locale.
// This decision lives entirely in the front end; internal/engine's
// Locale is always passed explicitly.
func localeFromEnv() engine.Locale {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			return engine.SingleByteLocale
		}
		return engine.DefaultLocale
	}
	if os.Getenv("POSIXLY_CORRECT") != "" {
		return engine.SingleByteLocale
	}
	return engine.DefaultLocale
}

// countFile opens path, counts it with streaming chunks, and returns the
// final, flushed Counts. The single-character name "-" means standard
// input, matching GNU wc's convention.
func countFile(path string, loc engine.Locale) (engine.Counts, error) {
	if path == "-" {
		return countReader(os.Stdin, loc)
	}
	f, err := os.Open(path)
	if err != nil {
		return engine.Counts{}, &ErrNoSuchFile{Path: path, Err: err}
	}
	defer f.Close()
	return countReader(f, loc)
}

// chunkSize is the size of each read passed to engine.CountStreaming.
// It has no effect on results; it only trades memory for syscall count.
const chunkSize = 64 * 1024

// countReader drives the CountStreaming/Flush protocol over r, matching
// internal/engine's documented streaming contract: one CarryState,
// repeated CountStreaming calls, exactly one terminal Flush.
func countReader(r io.Reader, loc engine.Locale) (engine.Counts, error) {
	br := bufio.NewReaderSize(r, chunkSize)
	buf := make([]byte, chunkSize)
	carry := engine.NewCarryState()
	var total engine.Counts

	for {
		n, err := br.Read(buf)
		if n > 0 {
			total = engine.Merge(total, engine.CountStreaming(buf[:n], loc, &carry))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return engine.Counts{}, fmt.Errorf("wc: read: %w", err)
		}
	}
	total = engine.Merge(total, engine.Flush(loc, &carry))
	return total, nil
}

// printLine writes the fields opts selected, in wc's canonical
// lines/words/chars/bytes/max-line-length order, followed by the label
// (a file name, "total", or empty for stdin).
func printLine(opts options, c engine.Counts, label string) {
	var fields []string
	if opts.lines {
		fields = append(fields, fmt.Sprint(c.Lines))
	}
	if opts.words {
		fields = append(fields, fmt.Sprint(c.Words))
	}
	if opts.chars {
		fields = append(fields, fmt.Sprint(c.Chars))
	}
	if opts.bytes {
		fields = append(fields, fmt.Sprint(c.Bytes))
	}
	if opts.maxLineLen {
		fields = append(fields, fmt.Sprint(c.MaxLineLength))
	}
	line := strings.Join(fields, " ")
	if label != "" {
		line += " " + label
	}
	fmt.Println(line)
}
