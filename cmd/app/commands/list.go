package commands

import (
	"fmt"
	"io"
	"log/slog"

	biscuitUseCase "github.com/allisson/biscuit/internal/biscuit/usecase"
)

// RunList loads the documents and writes the secret names they define.
// Nothing is decrypted, so no key service is contacted.
func RunList(
	reader biscuitUseCase.SecretReader,
	logger *slog.Logger,
	writer io.Writer,
	filenames []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if err := loadDocuments(reader, logger, filenames); err != nil {
		return err
	}

	names := reader.Names()
	if format == "json" {
		return writeJSON(writer, names)
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(writer, name); err != nil {
			return err
		}
	}
	return nil
}
