package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinywasm/enroll"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print whether this client already registered",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openStore()
	if err != nil {
		return err
	}
	defer closeDB()

	rec, err := enroll.LoadRecord(store, cfg.StorageKey)
	if err != nil {
		return err
	}
	if rec.HasSubmittedBefore() {
		fmt.Fprintln(cmd.OutOrStdout(), "submitted")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "not submitted")
	}
	return nil
}

var shareURLCmd = &cobra.Command{
	Use:   "share-url",
	Short: "Print the link opened by each share click",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), sessionConfig(cmd.ErrOrStderr()).ShareLink())
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the page for a fresh session",
	Long:  "Prints the registration form, or the terminal view when this client already registered.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		s, err := enroll.NewSession(store, sessionConfig(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), enroll.EnrollModule.RenderSession(s))
		return nil
	},
}
