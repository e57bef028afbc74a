package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	biscuitUseCase "github.com/allisson/biscuit/internal/biscuit/usecase"
)

// RunGet loads the documents and writes the plaintext of name.
//
// Skipped candidates are logged by the engine. When no candidate decrypts
// the command fails so scripts can tell a missing value from an empty one.
func RunGet(
	ctx context.Context,
	reader biscuitUseCase.SecretReader,
	logger *slog.Logger,
	writer io.Writer,
	filenames []string,
	name string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if err := loadDocuments(reader, logger, filenames); err != nil {
		return err
	}

	resolution, err := reader.Resolve(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read secret: %w", err)
	}
	if !resolution.Found {
		if err := resolution.Err(); err != nil {
			return err
		}
		return fmt.Errorf("secret %q: no candidate could be decrypted", name)
	}

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"name":    name,
			"value":   string(resolution.Plaintext),
			"skipped": len(resolution.Failures),
		})
	}

	_, err = fmt.Fprintln(writer, string(resolution.Plaintext))
	return err
}
