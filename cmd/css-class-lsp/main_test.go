package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsvensson/css-class-lsp/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	flagConfig, flagRoot, flagCfgRoot = "", "", "."
	flagWrite, flagCheck = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", ".b {} .a {}")
	writeFile(t, root, "sub/c.scss", ".a {}")
	writeFile(t, root, "node_modules/x.css", ".vendor {}")

	out, err := execute(t, "scan", root)
	require.NoError(t, err)
	assert.Equal(t, "a.css\n  a b\n"+filepath.FromSlash("sub/c.scss")+"\n  a\n"+
		"2 stylesheet(s), 2 unique class(es)\n", out)
}

func TestComplete(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "site.css", ".site-header {} .site-footer {}")
	page := writeFile(t, root, "index.html", `<div class="site-">`)

	out, err := execute(t, "complete", page, "0", "17")
	require.NoError(t, err)
	assert.Equal(t, "site-footer\nsite-header\n", out)
}

func TestConfig_Write(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "config", "--root", root, "--write")
	require.NoError(t, err)
	path := filepath.Join(root, config.FileName)
	assert.Equal(t, path+"\n", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = execute(t, "config", "--root", root, "--write")
	assert.ErrorContains(t, err, "already exists")
}
