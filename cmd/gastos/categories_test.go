package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, subcmd := range cmd.Commands() {
		if subcmd.Name() == name {
			return subcmd
		}
	}
	return nil
}

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd()
	assert.NotNil(t, cmd)

	for _, name := range []string{"list", "add", "update", "delete", "restore"} {
		assert.NotNil(t, findSubcommand(cmd, name), "%s subcommand should exist", name)
	}
}

func TestListCategoriesCmd(t *testing.T) {
	cmd := listCategoriesCmd()

	flag := cmd.Flag("deleted")
	assert.NotNil(t, flag, "deleted flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestAddCategoryCmd(t *testing.T) {
	cmd := addCategoryCmd()

	flag := cmd.Flag("description")
	assert.NotNil(t, flag, "description flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
}
