// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	biscuitUseCase "github.com/allisson/biscuit/internal/biscuit/usecase"
	"github.com/allisson/biscuit/internal/app"
	"github.com/allisson/biscuit/internal/document"
)

// DefaultOutput returns the writer commands print results to. Logs go to
// stderr, so stdout carries nothing but results.
func DefaultOutput() io.Writer {
	return os.Stdout
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// loadDocuments reads every file into reader. Later files replace the
// candidates of names that earlier files already defined.
func loadDocuments(reader biscuitUseCase.SecretReader, logger *slog.Logger, filenames []string) error {
	for _, filename := range filenames {
		entries, err := document.LoadFile(filename)
		if err != nil {
			return err
		}
		reader.Update(entries)
		logger.Debug("secrets document loaded",
			slog.String("filename", filename),
			slog.Int("secrets", len(entries)),
		)
	}
	return nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
	return nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
