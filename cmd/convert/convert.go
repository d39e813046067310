// Package convert handles single-file statement conversion
package convert

import (
	"time"

	"dmadriz/bac-csv/cmd/root"
	"dmadriz/bac-csv/internal/common"
	"dmadriz/bac-csv/internal/parsererror"
	"dmadriz/bac-csv/internal/store"
	"dmadriz/bac-csv/internal/transformer"

	"github.com/spf13/cobra"
)

var (
	importID     int64
	echoOriginal bool
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a BAC statement export to Monarch CSV",
	Long: `Convert a single BAC statement export file to the Monarch Money import format.

Transfer references in transaction descriptions are rewritten using the
friendly names stored in the account mapping database.

Example:
  bac-csv convert -i estado_cuenta.csv -o monarch.csv`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().Int64Var(&importID, "id", 0, "Import identifier embedded in the Notes column (default: current Unix time)")
	Cmd.Flags().BoolVar(&echoOriginal, "echo-original", false, "Fill the Original Statement column with the untouched description")
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Input and output files must be specified")
	}

	id := importID
	if id == 0 {
		id = time.Now().Unix()
	}

	mappings := openStore()
	if mappings != nil {
		defer func() {
			if err := mappings.Close(); err != nil {
				root.Log.Warnf("Failed to close mapping store: %v", err)
			}
		}()
	}

	opts := transformer.Options{
		AccountLabel: root.AccountLabel(),
		EchoOriginal: echoOriginal,
	}
	if err := common.Convert(root.SharedFlags.Input, root.SharedFlags.Output, id, mappings, opts); err != nil {
		if hint := parsererror.Hint(err); hint != "" {
			root.Log.Errorf("Hint: %s", hint)
		}
		root.Log.Fatalf("Error converting statement: %v", err)
	}
	root.Log.Info("Statement conversion completed successfully!")
}

// openStore opens the mapping store; a conversion still works without it,
// transfer references are just passed through untouched.
func openStore() *store.Store {
	mappings, err := root.OpenStore()
	if err != nil {
		root.Log.Warnf("Could not open account mapping store, transfer references will not be rewritten: %v", err)
		return nil
	}
	return mappings
}
