package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/nnnkkk7/go-wordcount/internal/engine"
)

func TestParseFlagsDefaultsToLinesWordsBytes(t *testing.T) {
	opts, files, err := parseFlags([]string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !opts.lines || !opts.words || !opts.bytes {
		t.Errorf("default flags: got %+v, want lines/words/bytes all true", opts)
	}
	if opts.chars || opts.maxLineLen {
		t.Errorf("default flags: chars/maxLineLen should be false, got %+v", opts)
	}
	if len(files) != 2 || files[0] != "a.txt" || files[1] != "b.txt" {
		t.Errorf("files = %v, want [a.txt b.txt]", files)
	}
}

func TestParseFlagsExplicitSelectionSuppressesDefaults(t *testing.T) {
	opts, _, err := parseFlags([]string{"-m"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.lines || opts.words || opts.bytes {
		t.Errorf("explicit -m should suppress defaults, got %+v", opts)
	}
	if !opts.chars {
		t.Errorf("expected chars = true, got %+v", opts)
	}
}

func TestParseFlagsCombinesMultipleShortFlags(t *testing.T) {
	opts, _, err := parseFlags([]string{"-l", "-L"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !opts.lines || !opts.maxLineLen {
		t.Errorf("got %+v, want lines and maxLineLen true", opts)
	}
	if opts.words || opts.bytes || opts.chars {
		t.Errorf("got %+v, want words/bytes/chars false", opts)
	}
}

func TestLocaleFromEnvDefaultsToUTF8(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	t.Setenv("POSIXLY_CORRECT", "")
	got := localeFromEnv()
	if got.Encoding != engine.UTF8 {
		t.Errorf("localeFromEnv() = %v, want UTF8", got.Encoding)
	}
}

func TestLocaleFromEnvRespectsCLocale(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	got := localeFromEnv()
	if got.Encoding != engine.SingleByte {
		t.Errorf("localeFromEnv() with LC_ALL=C = %v, want SingleByte", got.Encoding)
	}
}

func TestLocaleFromEnvRespectsPosixlyCorrect(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")
	t.Setenv("POSIXLY_CORRECT", "1")
	got := localeFromEnv()
	if got.Encoding != engine.SingleByte {
		t.Errorf("localeFromEnv() with POSIXLY_CORRECT = %v, want SingleByte", got.Encoding)
	}
}

func TestCountReaderMatchesCountBytes(t *testing.T) {
	data := []byte("line one\nline two\xe4\xb8\xad\nline three")
	r := bytes.NewReader(data)
	got, err := countReader(r, engine.DefaultLocale)
	if err != nil {
		t.Fatalf("countReader: %v", err)
	}
	want := engine.CountBytes(data, engine.DefaultLocale)
	if got != want {
		t.Errorf("countReader = %+v, want %+v", got, want)
	}
}

func TestReadFiles0FromParsesNulSeparated(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "files0")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if _, err := f.Write([]byte("a.txt\x00b.txt\x00c.txt\x00")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	names, err := readFiles0From(f.Name())
	if err != nil {
		t.Fatalf("readFiles0From: %v", err)
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestReadFiles0FromMissingFile(t *testing.T) {
	if _, err := readFiles0From("/nonexistent/path/for/test"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
