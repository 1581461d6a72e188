package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/isotoper/pkg/core"
	"github.com/ChrisMcGann/isotoper/pkg/deisotope"
	"github.com/ChrisMcGann/isotoper/pkg/filter"
	"github.com/ChrisMcGann/isotoper/pkg/reader/peaks"
	"github.com/ChrisMcGann/isotoper/pkg/workspace"
	"github.com/ChrisMcGann/isotoper/pkg/writer/sqlite"
)

func runGroup(cmd *cobra.Command, args []string) error {
	// Validate input file exists
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}

	list, err := loadCSVPeakList(inputFile)
	if err != nil {
		return err
	}

	fmt.Printf("Grouping %s into %s...\n", inputFile, outputFile)
	fmt.Printf("Peaks: %d\n", list.NumRows())
	fmt.Printf("m/z tolerance: %g Da, RT tolerance: %g\n", mzTolerance, rtTolerance)
	fmt.Printf("Maximum charge: %d\n", maximumCharge)

	// Apply pre-grouping filters if configured
	filterConfig, err := buildFilterConfig()
	if err != nil {
		return err
	}
	if filterConfig.Active() {
		list = filterConfig.Apply(list)
		fmt.Printf("Peaks after filtering: %d\n", list.NumRows())
	}

	params := deisotope.Parameters{
		Suffix:         suffix,
		MZTolerance:    mzTolerance,
		RTTolerance:    rtTolerance,
		MonotonicShape: monotonic,
		MaximumCharge:  maximumCharge,
		AutoRemove:     autoRemove,
	}

	ws := workspace.NewMemory()
	if err := ws.Register(list); err != nil {
		return err
	}

	task, err := deisotope.NewGrouperTask(list, params, ws)
	if err != nil {
		return err
	}
	if err := task.Run(context.Background()); err != nil {
		return fmt.Errorf("grouping failed: %w", err)
	}

	created := task.CreatedObjects()
	if len(created) == 0 {
		return fmt.Errorf("grouping produced no peak list")
	}
	grouped := created[0].(*core.PeakList)

	writer, err := sqlite.NewWriter(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}
	if err := writer.WritePeakList(grouped); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write output database: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	collapsed := 0
	for _, row := range grouped.Rows() {
		for _, src := range grouped.Sources() {
			if p, ok := row.Peak(src); ok && p.Pattern != nil {
				collapsed++
			}
		}
	}
	fmt.Printf("Done: %d rows written (%d isotope groups)\n", grouped.NumRows(), collapsed)

	return nil
}

// loadCSVPeakList reads a CSV peak list, named after the input file.
func loadCSVPeakList(path string) (*core.PeakList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	list, err := peaks.ReadPeakList(f, name, core.Source(base))
	if err != nil {
		return nil, fmt.Errorf("failed to read peak list: %w", err)
	}
	return list, nil
}

// buildFilterConfig assembles the pre-grouping filter from the run flags.
func buildFilterConfig() (*filter.Config, error) {
	config := &filter.Config{MinHeight: minHeight}

	if mzRange != "" {
		min, max, err := parseRange(mzRange)
		if err != nil {
			return nil, fmt.Errorf("invalid --mz-range: %w", err)
		}
		config.MZMin, config.MZMax = min, max
	}
	if rtRange != "" {
		min, max, err := parseRange(rtRange)
		if err != nil {
			return nil, fmt.Errorf("invalid --rt-range: %w", err)
		}
		config.RTMin, config.RTMax = min, max
	}

	return config, nil
}

// parseRange parses a "min-max" range string.
func parseRange(s string) (min, max float64, err error) {
	if _, err := fmt.Sscanf(s, "%f-%f", &min, &max); err != nil {
		return 0, 0, fmt.Errorf("expected 'min-max', got %q", s)
	}
	if max < min {
		return 0, 0, fmt.Errorf("range %q has max below min", s)
	}
	return min, max, nil
}
