package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by its
// --file flag, or from piped stdin when the flag is empty.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin and IsTerminal default to the process stdin; tests replace them.
	Stdin      io.Reader
	IsTerminal func() bool
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetFile overrides the --file value.
func (fr *FileReader[T]) SetFile(path string) { fr.fileFlagValue = path }

func (fr *FileReader[T]) stdin() (io.Reader, bool) {
	if fr.Stdin != nil {
		isTerm := fr.IsTerminal != nil && fr.IsTerminal()
		return fr.Stdin, isTerm
	}
	return os.Stdin, term.IsTerminal(int(os.Stdin.Fd()))
}

// Read decodes the input. Reading from an interactive terminal is refused so
// the command never blocks waiting for typed JSON.
func (fr *FileReader[T]) Read() (T, error) {
	var (
		reader io.Reader
		input  T
	)

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		in, isTerm := fr.stdin()
		if isTerm {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = in
	}

	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
