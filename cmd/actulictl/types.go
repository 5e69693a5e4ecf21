package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	typesCmd := &cobra.Command{Use: "types", Short: "Reference-data catalog operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all catalog groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/types", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	typesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get TYPE_ID",
		Short: "Get a catalog group by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/types/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	typesCmd.AddCommand(getCmd)

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reconcile the catalog against the bundled source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/types/update", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	typesCmd.AddCommand(refreshCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete TYPE_ID",
		Short: "Delete a catalog group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDelete(fmt.Sprintf("%s/api/types/%s", apiFlag, args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	typesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(typesCmd)
}
