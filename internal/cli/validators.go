package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// ValidateFilePath checks that path names an existing regular file.
func ValidateFilePath(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("document does not exist: %s", path)
	case err != nil:
		return fmt.Errorf("cannot read document %s: %w", path, err)
	case info.IsDir():
		return fmt.Errorf("%s is a directory, expected a JSON file", path)
	}
	return nil
}

// ValidateOutputFormat checks an --output value against OutputFormats.
func ValidateOutputFormat(format string) error {
	if slices.Contains(OutputFormats, OutputFormat(format)) {
		return nil
	}
	names := make([]string, len(OutputFormats))
	for i, f := range OutputFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("invalid output format: %s (must be one of %s)", format, strings.Join(names, ", "))
}

// ValidateExportName rejects blank names and names that only make sense to a
// shell. Directories in the name are allowed.
func ValidateExportName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("export file name cannot be empty")
	}
	if i := strings.IndexAny(name, "~$`"); i >= 0 {
		return fmt.Errorf("export file name contains invalid character: %c", name[i])
	}
	return nil
}
