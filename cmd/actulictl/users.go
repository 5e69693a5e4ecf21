package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User record operations"}

	// create
	var userId, username, name string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userId == "" {
				return fmt.Errorf("--userId required")
			}
			payload := map[string]interface{}{"id": userId}
			if username != "" {
				payload["username"] = username
			}
			if name != "" {
				payload["name"] = name
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/users", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&userId, "userId", "u", "", "User ID (required)")
	createCmd.Flags().StringVarP(&username, "username", "n", "", "Username")
	createCmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = createCmd.MarkFlagRequired("userId")
	usersCmd.AddCommand(createCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get a user record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	usersCmd.AddCommand(getCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all user records",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/users", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	usersCmd.AddCommand(listCmd)

	// update
	var patchJSON string
	updateCmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Merge a partial record into a user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(patchJSON), &payload); err != nil {
				return fmt.Errorf("--json must be a JSON object: %w", err)
			}
			data, err := doPutJSON(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0]), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&patchJSON, "json", "j", "", "Partial record as JSON (required)")
	_ = updateCmd.MarkFlagRequired("json")
	usersCmd.AddCommand(updateCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doDelete(fmt.Sprintf("%s/api/users/%s", apiFlag, args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "deleted")
			return nil
		},
	}
	usersCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(usersCmd)
}
