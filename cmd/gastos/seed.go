package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastos-cli/gastos/internal/cli"
	"github.com/gastos-cli/gastos/internal/seed"
)

func seedCmd() *cobra.Command {
	var opts seed.Options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the ledger with sample data",
		Long:  `Generate plausible fake categories and transactions for demos and manual testing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := seed.NewGenerator(store, opts).Run(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Seeded %d transactions", opts.Transactions)))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Transactions, "transactions", 50, "number of transactions to create")
	cmd.Flags().IntVar(&opts.Categories, "categories", 0, "extra random categories beyond the defaults")
	cmd.Flags().IntVar(&opts.Months, "months", 6, "how many months back to spread the dates")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 means time-based)")
	return cmd
}
