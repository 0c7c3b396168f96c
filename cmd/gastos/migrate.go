package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastos-cli/gastos/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		Long:  `Apply any pending schema migrations. Opening the database through any other command does this too; migrate exists to do it explicitly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.FormatSuccess("Database schema is up to date"))
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify database integrity",
		Long:  `Run SQLite's integrity check and report active record counts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			report, err := store.CheckIntegrity(ctx)
			if err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("integrity check failed: %s", report.Result)
			}

			fmt.Println(cli.FormatSuccess("Integrity check passed"))
			fmt.Printf("Active categories:   %d\n", report.ActiveCategories)
			fmt.Printf("Active transactions: %d\n", report.ActiveTransactions)
			return nil
		},
	}
}
