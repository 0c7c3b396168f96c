package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gastos-cli/gastos/internal/cli"
	"github.com/gastos-cli/gastos/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, update, delete and restore the categories transactions are grouped by.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(restoreCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var showDeleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display all active categories with their descriptions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var categories []model.Category
			if showDeleted {
				categories, err = store.ListDeletedCategories(ctx)
			} else {
				categories, err = store.ListCategories(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'gastos categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Description"))

			for _, cat := range categories {
				desc := cat.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(no description)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, desc)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDeleted, "deleted", false, "show soft-deleted categories instead")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.CreateCategory(ctx, args[0], description)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (id %d)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update a category's name and description",
		Args:  cobra.ExactArgs(2),
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

			if err := store.UpdateCategory(ctx, id, args[1], description); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a category",
		Long: `Mark a category as deleted. Its transactions are kept untouched and
continue to show the original category label.`,
		Args: cobra.ExactArgs(1),
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

			if err := store.DeleteCategory(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %d", id)))
			return nil
		},
	}
}

func restoreCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted category",
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

			if err := store.RestoreCategory(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored category %d", id)))
			return nil
		},
	}
}
