// Package detect reports transfer references found in a statement
package detect

import (
	"fmt"
	"os"

	"dmadriz/bac-csv/cmd/root"
	"dmadriz/bac-csv/internal/encoding"
	"dmadriz/bac-csv/internal/parsererror"
	"dmadriz/bac-csv/internal/statement"
	"dmadriz/bac-csv/internal/store"
	"dmadriz/bac-csv/internal/transfers"

	"github.com/spf13/cobra"
)

var showAll bool

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "List transfer references found in a statement",
	Long: `Scan a BAC statement export for TEF and SINPE transfer references and list
the account numbers that have no friendly name mapped yet. Use
"bac-csv accounts add" to map them before converting.

Example:
  bac-csv detect -i estado_cuenta.csv`,
	Run: detectFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showAll, "all", false, "Show mapped references as well")
}

func detectFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Detect command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file must be specified")
	}

	raw, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	text, err := encoding.Decode(raw)
	if err != nil {
		root.Log.Fatalf("Error decoding input file: %v", err)
	}

	st, err := statement.Parse(text)
	if err != nil {
		if hint := parsererror.Hint(err); hint != "" {
			root.Log.Errorf("Hint: %s", hint)
		}
		root.Log.Fatalf("Error parsing statement: %v", err)
	}

	internal := map[string]string{}
	interbank := map[string]string{}
	if mappings, err := root.OpenStore(); err != nil {
		root.Log.Warnf("Could not open account mapping store: %v", err)
	} else {
		defer func() {
			if err := mappings.Close(); err != nil {
				root.Log.Warnf("Failed to close mapping store: %v", err)
			}
		}()
		if internal, err = mappings.Mappings(store.SchemeInternal); err != nil {
			root.Log.Fatalf("Error loading internal mappings: %v", err)
		}
		if interbank, err = mappings.Mappings(store.SchemeInterbank); err != nil {
			root.Log.Fatalf("Error loading interbank mappings: %v", err)
		}
	}

	printRefs("TEF (internal)", transfers.DetectInternal(st), internal)
	printRefs("SINPE (interbank)", transfers.DetectInterbank(st), interbank)
}

func printRefs(label string, refs []string, mappings map[string]string) {
	fmt.Printf("%s transfer references:\n", label)
	found := 0
	for _, ref := range refs {
		name, mapped := mappings[ref]
		if mapped && !showAll {
			continue
		}
		if mapped {
			fmt.Printf("  %s -> %s\n", ref, name)
		} else {
			fmt.Printf("  %s (unmapped)\n", ref)
		}
		found++
	}
	if found == 0 {
		fmt.Println("  none")
	}
}
