package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/cli"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDBLifecycleCommands(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "board.db")

	out, err := runCommand(t, "db", "status", "--backend", "sql", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "tables absent")

	out, err = runCommand(t, "db", "create", "--backend", "sql", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "tables created")

	out, err = runCommand(t, "db", "status", "--backend", "sql", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "tables present")

	out, err = runCommand(t, "db", "drop", "--backend", "sql", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "tables dropped")

	out, err = runCommand(t, "db", "status", "--backend", "sql", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "tables absent")
}

func TestDBCommandsRejectMigratingBackend(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "board.db")

	_, err := runCommand(t, "db", "status", "--backend", "gorm", "--dsn", dsn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manages its schema automatically")
}

func TestRejectsInvalidFlagValues(t *testing.T) {
	_, err := runCommand(t, "db", "status", "--backend", "bolt", "--dsn", "x.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database backend")
}
