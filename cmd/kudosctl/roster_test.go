package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRosterBundledData(t *testing.T) {
	var out bytes.Buffer
	base := filepath.Join("..", "..", "data")
	err := validateRoster(&out,
		filepath.Join(base, "team-members.json"),
		filepath.Join(base, "team-members-email.json"),
		filepath.Join(base, "values.json"),
	)
	require.NoError(t, err)
	require.Contains(t, out.String(), "undeliverable: 0")
}

func TestValidateRosterReportsUndeliverable(t *testing.T) {
	dir := t.TempDir()
	members := filepath.Join(dir, "members.yaml")
	values := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(members, []byte("- id: r1\n  name: Ana\n  email: ana\n"), 0o600))
	require.NoError(t, os.WriteFile(values, []byte("- id: teamwork\n  name: Teamwork\n  description: x\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, validateRoster(&out, members, "", values))
	require.Contains(t, out.String(), "warning: r1 (Ana) has no deliverable email")
	require.Contains(t, out.String(), "members: 1, values: 1, undeliverable: 1")
}

func TestRosterValidateCommand(t *testing.T) {
	cmd := rosterCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate", "--members", filepath.Join("missing", "members.json")})
	require.Error(t, cmd.Execute())
}
