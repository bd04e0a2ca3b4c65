package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/hearts/internal/config"
	"github.com/tomz197/hearts/internal/loop"
	"golang.org/x/term"
)

// openLog returns a logger writing to path, or nil when path is empty.
// Logging to the terminal would tear the drawing apart.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "hearts"})
	return logger, func() { _ = f.Close() }, nil
}

func run() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	logger, closeLog, err := openLog(config.GetEnv("HEARTS_LOG", ""))
	if err != nil {
		return err
	}
	defer closeLog()

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	return loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Seed:   uint64(config.GetEnvInt("HEARTS_SEED", 0)),
		Logger: logger,
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hearts: %v\n", err)
		os.Exit(1)
	}
}
