package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	return &config.AppConfig{
		Env:        "dev",
		LogLevel:   "error",
		ZoneDir:    filepath.Join(dir, "zones"),
		StorePath:  filepath.Join(dir, "zones.db"),
		CacheSize:  16,
		DefaultTTL: 300,
	}
}

func writeZone(t *testing.T, cfg *config.AppConfig, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.ZoneDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ZoneDir, name), []byte(content), 0o644))
}

func captureCmd() (*cobra.Command, *bytes.Buffer) {
	c := &cobra.Command{}
	out := &bytes.Buffer{}
	c.SetOut(out)
	return c, out
}

func TestMain(m *testing.M) {
	log.SetLogger(log.NewNoopLogger())
	os.Exit(m.Run())
}

func TestCompileAndLookup(t *testing.T) {
	cfg := testConfig(t)
	writeZone(t, cfg, "example.com.zone", `
$TTL 3600
@    MX 16 mail
mail A  192.0.2.1
`)

	require.NoError(t, runCompile(cfg))

	c, out := captureCmd()
	require.NoError(t, runLookup(cfg, c, "example.com", "MX"))
	assert.Equal(t, "example.com. 3600 IN MX 16 mail.example.com.\n", out.String())

	c, out = captureCmd()
	require.NoError(t, runLookup(cfg, c, "mail.example.com.", "a"))
	assert.Contains(t, out.String(), "192.0.2.1")
}

func TestRunCompile_EmptyDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.ZoneDir, 0o755))

	err := runCompile(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no zone files")
}

func TestRunLookup_Errors(t *testing.T) {
	cfg := testConfig(t)
	writeZone(t, cfg, "example.com.zone", "@ MX 16 mail\n")
	require.NoError(t, runCompile(cfg))

	c, _ := captureCmd()
	err := runLookup(cfg, c, "example.com", "BOGUS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record type")

	c, _ = captureCmd()
	err = runLookup(cfg, c, "absent.example.com", "MX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no MX records")
}

func TestRunCheck(t *testing.T) {
	cfg := testConfig(t)
	writeZone(t, cfg, "example.com.zone", "@ MX 16 mail\n")
	require.NoError(t, runCheck(cfg))
}

func TestRunFmt_Normalized(t *testing.T) {
	cfg = testConfig(t)
	path := filepath.Join(t.TempDir(), "in.zone")
	require.NoError(t, os.WriteFile(path, []byte("@ 3600 IN MX 16 mail ; comment\n"), 0o644))

	c, out := captureCmd()
	require.NoError(t, runFmt(c, path, "example.com", false))
	assert.Equal(t, "example.com. 3600 IN MX 16 mail.example.com.\n", out.String())
}

func TestRunFmt_CanonicalHexIsCaseStable(t *testing.T) {
	cfg = testConfig(t)
	dir := t.TempDir()

	mixed := filepath.Join(dir, "mixed.zone")
	require.NoError(t, os.WriteFile(mixed, []byte("@ MX 16 Mail.Example.COM.\n"), 0o644))
	lower := filepath.Join(dir, "lower.zone")
	require.NoError(t, os.WriteFile(lower, []byte("@ MX 16 mail.example.com.\n"), 0o644))

	c1, out1 := captureCmd()
	require.NoError(t, runFmt(c1, mixed, "example.com.", true))
	c2, out2 := captureCmd()
	require.NoError(t, runFmt(c2, lower, "example.com.", true))

	require.NotEmpty(t, out1.String())
	assert.Equal(t, out2.String(), out1.String())
	// canonical output is hex, one line per record
	assert.Len(t, strings.Fields(out1.String()), 1)
}

func TestRunFmt_BadOrigin(t *testing.T) {
	cfg = testConfig(t)
	c, _ := captureCmd()
	err := runFmt(c, "nonexistent.zone", "..", false)
	require.Error(t, err)
}
