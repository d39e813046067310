// Package accounts manages the persisted friendly-name mappings
package accounts

import (
	"fmt"
	"os"
	"sort"

	"dmadriz/bac-csv/cmd/root"
	"dmadriz/bac-csv/internal/store"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var schemeFlag string

// Cmd represents the accounts command
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage account friendly-name mappings",
	Long: `Manage the persisted mappings from account numbers to friendly names.
Two independent schemes exist: "tef" for internal BAC-to-BAC transfers and
"sinpe" for interbank transfers.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mappings for a scheme",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <account-number> <friendly-name>",
	Short: "Add or update a mapping",
	Args:  cobra.ExactArgs(2),
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <account-number>",
	Short: "Remove a mapping",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scheme's mappings as YAML",
	Run:   exportFunc,
}

func init() {
	Cmd.PersistentFlags().StringVar(&schemeFlag, "scheme", "tef", "Mapping scheme: tef or sinpe")
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(exportCmd)
}

func scheme() store.Scheme {
	s := store.Scheme(schemeFlag)
	if !s.Valid() {
		root.Log.Fatalf("Unknown scheme '%s', expected 'tef' or 'sinpe'", schemeFlag)
	}
	return s
}

func openStore() *store.Store {
	mappings, err := root.OpenStore()
	if err != nil {
		root.Log.Fatalf("Error opening account mapping store: %v", err)
	}
	return mappings
}

func closeStore(mappings *store.Store) {
	if err := mappings.Close(); err != nil {
		root.Log.Warnf("Failed to close mapping store: %v", err)
	}
}

func listFunc(cmd *cobra.Command, args []string) {
	mappings := openStore()
	defer closeStore(mappings)

	entries, err := mappings.Mappings(scheme())
	if err != nil {
		root.Log.Fatalf("Error listing mappings: %v", err)
	}

	if len(entries) == 0 {
		fmt.Printf("No %s mappings stored.\n", schemeFlag)
		return
	}

	accounts := make([]string, 0, len(entries))
	for account := range entries {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		fmt.Printf("%s\t%s\n", account, entries[account])
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	account, name := args[0], args[1]
	if name == "" {
		root.Log.Fatal("Friendly name must not be empty")
	}

	mappings := openStore()
	defer closeStore(mappings)

	if err := mappings.Put(scheme(), account, name); err != nil {
		root.Log.Fatalf("Error saving mapping: %v", err)
	}
	root.Log.Infof("Mapped %s account %s to %q", schemeFlag, account, name)
}

func removeFunc(cmd *cobra.Command, args []string) {
	mappings := openStore()
	defer closeStore(mappings)

	if err := mappings.Delete(scheme(), args[0]); err != nil {
		root.Log.Fatalf("Error removing mapping: %v", err)
	}
	root.Log.Infof("Removed %s mapping for account %s", schemeFlag, args[0])
}

func exportFunc(cmd *cobra.Command, args []string) {
	mappings := openStore()
	defer closeStore(mappings)

	entries, err := mappings.Mappings(scheme())
	if err != nil {
		root.Log.Fatalf("Error listing mappings: %v", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		root.Log.Fatalf("Error marshaling mappings: %v", err)
	}

	if root.SharedFlags.Output != "" {
		if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
			root.Log.Fatalf("Error writing export file: %v", err)
		}
		root.Log.Infof("Exported %d %s mappings to %s", len(entries), schemeFlag, root.SharedFlags.Output)
		return
	}
	fmt.Print(string(data))
}
