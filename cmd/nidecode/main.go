// Command nidecode decodes one Egyptian National ID per invocation, taken
// from the first argument or, when none is given, the first non-blank line
// of stdin.
//
//	nidecode 29902150112305
//	echo 29902150112305 | nidecode
//
// The ID is printed as Gender, Birthdate, Governorate and Age lines, or as an
// error line. The exit status is 1 when the ID failed to decode and 2 on
// usage or I/O errors.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"egid/internal/nationalid/render"
	"egid/internal/nationalid/service"
	"egid/internal/platform/config"
	"egid/internal/platform/logger"
)

var (
	errTooManyArgs = errors.New("usage: nidecode [national-id]")
	errNoInput     = errors.New("no national ID given")
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidecode: %v\n", err)
		os.Exit(2)
	}
	cfg.LogFormat = config.LogFormatText
	if cfg.LogLevel < slog.LevelWarn {
		cfg.LogLevel = slog.LevelWarn
	}
	svc := service.New(logger.New(os.Stderr, cfg), nil)

	failed, err := decode(context.Background(), svc, os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nidecode: %v\n", err)
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}

// decode decodes a single ID and reports whether it failed to decode.
func decode(ctx context.Context, svc *service.Service, args []string, in io.Reader, out io.Writer) (bool, error) {
	raw, err := readID(args, in)
	if err != nil {
		return false, err
	}

	res, err := svc.Decode(ctx, raw)
	if err != nil {
		return true, render.Error(out, err)
	}
	return false, render.Result(out, res)
}

// readID returns the trimmed argument, or the first non-blank stdin line.
func readID(args []string, in io.Reader) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", errTooManyArgs
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return "", errNoInput
}
