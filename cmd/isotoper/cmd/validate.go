package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/isotoper/pkg/core"
	sqlitereader "github.com/ChrisMcGann/isotoper/pkg/reader/sqlite"
)

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	list, err := loadPeakList(path)
	if err != nil {
		return err
	}

	if err := list.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("OK: %s contains %d valid rows\n", path, list.NumRows())
	return nil
}

// loadPeakList reads a peak list from a CSV file or a result database,
// chosen by file extension.
func loadPeakList(path string) (*core.PeakList, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return sqlitereader.ReadPeakList(path)
	default:
		return loadCSVPeakList(path)
	}
}
