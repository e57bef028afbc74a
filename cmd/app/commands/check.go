package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/biscuit/internal/document"
	"github.com/allisson/biscuit/internal/validation"
)

type entryProblem struct {
	Filename  string `json:"filename"`
	Name      string `json:"name"`
	Candidate int    `json:"candidate"`
	Error     string `json:"error"`
}

// RunCheck validates the structure of every entry in the documents without
// decrypting anything. It fails when at least one entry is invalid.
func RunCheck(logger *slog.Logger, writer io.Writer, filenames []string, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	problems := []entryProblem{}
	checked := 0
	for _, filename := range filenames {
		entries, err := document.LoadFile(filename)
		if err != nil {
			return err
		}
		for _, name := range entries.Names() {
			for i, entry := range entries[name] {
				checked++
				if err := validation.ValidateEntry(entry); err != nil {
					problems = append(problems, entryProblem{
						Filename:  filename,
						Name:      name,
						Candidate: i,
						Error:     err.Error(),
					})
				}
			}
		}
	}

	logger.Debug("entries checked",
		slog.Int("checked", checked),
		slog.Int("invalid", len(problems)),
	)

	if format == "json" {
		if err := writeJSON(writer, map[string]any{
			"checked":  checked,
			"problems": problems,
		}); err != nil {
			return err
		}
	} else {
		for _, p := range problems {
			if _, err := fmt.Fprintf(writer, "%s: %s[%d]: %s\n", p.Filename, p.Name, p.Candidate, p.Error); err != nil {
				return err
			}
		}
		if len(problems) == 0 {
			if _, err := fmt.Fprintf(writer, "%d entries OK\n", checked); err != nil {
				return err
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d of %d entries are invalid", len(problems), checked)
	}
	return nil
}
