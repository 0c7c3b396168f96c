package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/gastos-cli/gastos/internal/cli"
	"github.com/gastos-cli/gastos/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, update, delete and restore income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(updateTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(restoreTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		category    string
		description string
		dateFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add <income|expense> <amount>",
		Short: "Add a transaction",
		Long: `Record a new transaction. The amount is always positive; whether it
adds to or subtracts from the balance is decided by the type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := model.ParseTransactionType(args[0])
			if err != nil {
				return err
			}

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			date := time.Now()
			if dateFlag != "" {
				parsed, parseErr := parseDateFlag(dateFlag, "date")
				if parseErr != nil {
					return parseErr
				}
				date = *parsed
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var categoryID *int64
			if category != "" {
				cat, catErr := store.GetCategoryByName(ctx, category)
				if catErr != nil {
					return catErr
				}
				if cat == nil {
					return fmt.Errorf("no active category named %q", category)
				}
				categoryID = &cat.ID
			}

			txn, err := store.CreateTransaction(ctx, typ, amount, categoryID, description, date)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %.2f (id %d)", txn.Type, txn.Amount, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date (YYYY-MM-DD, default today)")
	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		typeFlag     string
		categoryFlag string
		fromFlag     string
		toFlag       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display active transactions, most recent first. All filters combine with AND.`,
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

			transactions, err := store.ListTransactions(ctx, filter)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"))

			for _, txn := range transactions {
				amount := fmt.Sprintf("%.2f", txn.Amount)
				if txn.Type == model.TypeExpense {
					amount = cli.ExpenseStyle.Render(amount)
				} else {
					amount = cli.IncomeStyle.Render(amount)
				}

				category := txn.CategoryName
				if category == "" {
					category = cli.SubtleStyle.Render(model.UncategorizedLabel)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format(model.DateLayout),
					txn.Type,
					amount,
					category,
					txn.Description)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "filter by type (income, expense)")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "filter by active category name")
	cmd.Flags().StringVar(&fromFlag, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	return cmd
}

func updateTxCmd() *cobra.Command {
	var (
		typeFlag      string
		amountFlag    string
		categoryFlag  string
		descFlag      string
		dateFlag      string
		clearCategory bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a transaction",
		Long:  `Change only the fields given by flags; everything else keeps its value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update model.TransactionUpdate

			if update.Type, err = parseTypeFlag(typeFlag); err != nil {
				return err
			}

			if amountFlag != "" {
				amount, parseErr := strconv.ParseFloat(amountFlag, 64)
				if parseErr != nil {
					return fmt.Errorf("invalid amount %q", amountFlag)
				}
				update.Amount = &amount
			}

			if descFlag != "" {
				update.Description = &descFlag
			}

			if update.Date, err = parseDateFlag(dateFlag, "date"); err != nil {
				return err
			}

			update.ClearCategory = clearCategory

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if categoryFlag != "" {
				cat, catErr := store.GetCategoryByName(ctx, categoryFlag)
				if catErr != nil {
					return catErr
				}
				if cat == nil {
					return fmt.Errorf("no active category named %q", categoryFlag)
				}
				update.CategoryID = &cat.ID
			}

			if err := store.UpdateTransaction(ctx, id, update); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "new type (income, expense)")
	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "new category name")
	cmd.Flags().StringVarP(&descFlag, "description", "d", "", "new description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearCategory, "clear-category", false, "remove the category reference")
	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func restoreTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.RestoreTransaction(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored transaction %d", id)))
			return nil
		},
	}
}
