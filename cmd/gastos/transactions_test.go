package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxCmd(t *testing.T) {
	cmd := txCmd()
	assert.NotNil(t, cmd)

	for _, name := range []string{"add", "list", "update", "delete", "restore"} {
		assert.NotNil(t, findSubcommand(cmd, name), "%s subcommand should exist", name)
	}
}

func TestListTxCmd(t *testing.T) {
	cmd := listTxCmd()

	for _, name := range []string{"type", "category", "from", "to"} {
		assert.NotNil(t, cmd.Flag(name), "%s flag should exist", name)
	}
}

func TestUpdateTxCmd(t *testing.T) {
	cmd := updateTxCmd()

	for _, name := range []string{"type", "amount", "category", "description", "date", "clear-category"} {
		assert.NotNil(t, cmd.Flag(name), "%s flag should exist", name)
	}

	flag := cmd.Flag("clear-category")
	assert.Equal(t, "false", flag.DefValue)
}

func TestReportCmd(t *testing.T) {
	cmd := reportCmd()
	assert.NotNil(t, cmd)

	for _, name := range []string{"balance", "categories", "monthly"} {
		assert.NotNil(t, findSubcommand(cmd, name), "%s subcommand should exist", name)
	}
}
