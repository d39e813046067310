// Package batch handles batch processing of statement files
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dmadriz/bac-csv/cmd/root"
	"dmadriz/bac-csv/internal/common"
	"dmadriz/bac-csv/internal/logging"
	"dmadriz/bac-csv/internal/models"
	"dmadriz/bac-csv/internal/store"
	"dmadriz/bac-csv/internal/transformer"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert statement files from a directory",
	Long: `Batch convert all BAC statement exports in an input directory to the Monarch
Money import format in an output directory. Each file is converted
independently; files that fail are logged and skipped.

Example:
  bac-csv batch -i exports/ -o monarch/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	// For batch, the shared -i/-o flags refer to directories
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	logger := root.GetLogrusAdapter()
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Input and output directories must be specified")
	}

	if err := os.MkdirAll(outputDir, models.PermissionDirectory); err != nil {
		root.Log.Fatalf("Failed to create output directory: %v", err)
	}

	mappings, err := root.OpenStore()
	if err != nil {
		logger.WithError(err).Warn("Could not open account mapping store, transfer references will not be rewritten")
		mappings = nil
	} else {
		defer func() {
			if err := mappings.Close(); err != nil {
				logger.WithError(err).Warn("Failed to close mapping store")
			}
		}()
	}

	count, err := batchConvert(inputDir, outputDir, mappings, logger)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d files converted.", count))
}

// batchConvert converts every .csv file in inputDir, skipping failures.
// Every file in the run shares the same import identifier.
func batchConvert(inputDir, outputDir string, mappings *store.Store, logger logging.Logger) (int, error) {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read input directory: %w", err)
	}

	importID := time.Now().Unix()
	opts := transformer.Options{AccountLabel: root.AccountLabel()}

	processed := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".csv") {
			continue
		}

		inputPath := filepath.Join(inputDir, file.Name())
		baseName := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		outputPath := filepath.Join(outputDir, baseName+"-monarch.csv")

		if err := common.Convert(inputPath, outputPath, importID, mappings, opts); err != nil {
			logger.WithError(err).Warn("Failed to convert file, skipping",
				logging.Field{Key: "file", Value: inputPath})
			continue
		}

		logger.Info("Converted file",
			logging.Field{Key: "input", Value: inputPath},
			logging.Field{Key: "output", Value: outputPath})
		processed++
	}

	if processed == 0 {
		logger.Warn("No statement files converted from input directory")
	}
	return processed, nil
}
