package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gastos-cli/gastos/internal/cli"
	"github.com/gastos-cli/gastos/internal/report"
)

const barWidth = 30

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive reports from the ledger",
		Long:  `Balance summary, per-category totals, and monthly trends over the active transaction set.`,
	}

	cmd.AddCommand(balanceCmd())
	cmd.AddCommand(byCategoryCmd())
	cmd.AddCommand(monthlyCmd())

	return cmd
}

func balanceCmd() *cobra.Command {
	var (
		typeFlag     string
		categoryFlag string
		fromFlag     string
		toFlag       string
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show total income, total expense and balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := buildFilter(typeFlag, categoryFlag, fromFlag, toFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			balance, err := store.SummaryBalance(ctx, filter)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Balance"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, row := range report.BalanceRows(balance) {
				value := report.FormatAmount(row.Total)
				switch row.Category {
				case "Income":
					value = cli.IncomeStyle.Render(value)
				case "Expense":
					value = cli.ExpenseStyle.Render(value)
				default:
					if row.Total < 0 {
						value = cli.ExpenseStyle.Render(value)
					}
				}
				fmt.Fprintf(w, "%s\t%s\n", row.Category, value)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "restrict to one type (income, expense)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "restrict to an active category")
	cmd.Flags().StringVar(&fromFlag, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	return cmd
}

func byCategoryCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show totals grouped by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			typ, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			totals, err := store.TotalsByCategory(ctx, typ)
			if err != nil {
				return err
			}

			series := report.CategorySeries(totals)
			if series.Len() == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions to report."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Totals by category"))
			renderSeries(series)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "restrict to one type (income, expense)")
	return cmd
}

func monthlyCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show totals grouped by calendar month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			typ, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			totals, err := store.TotalsByMonth(ctx, typ)
			if err != nil {
				return err
			}

			series := report.MonthlySeries(totals)
			if series.Len() == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions to report."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Totals by month"))
			renderSeries(series)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "restrict to one type (income, expense)")
	return cmd
}

// renderSeries prints one bar row per series point.
func renderSeries(series report.Series) {
	max := series.Max()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	for i := 0; i < series.Len(); i++ {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			series.Labels[i],
			report.FormatAmount(series.Values[i]),
			cli.RenderBar(series.Values[i], max, barWidth))
	}
}
