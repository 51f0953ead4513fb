package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickies/internal/board"
	"stickies/internal/storage"
)

func seedStore(t *testing.T, backend string, notes []board.Note) string {
	t.Helper()
	dir := t.TempDir()
	kv, err := storage.Open(backend, dir)
	require.NoError(t, err)
	storage.NewPersistence(kv, nil).Save(notes)
	require.NoError(t, kv.Close())
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateDirs(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var seeded = []board.Note{
	{ID: "b", X: 60, Y: 60, Width: 200, Height: 160, Content: "second", ZIndex: 2},
	{ID: "a", X: 40, Y: 40, Width: 200, Height: 160, Content: "first\nline", ZIndex: 1},
}

func TestListJSON(t *testing.T) {
	dir := seedStore(t, storage.BackendFile, seeded)

	out, err := execute(t, "list", "--format", "json", "--data-dir", dir)
	require.NoError(t, err)

	var records []noteRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, 2, records[1].ZIndex)
}

func TestListTableFromSQLite(t *testing.T) {
	dir := seedStore(t, storage.BackendSQLite, seeded)

	out, err := execute(t, "list", "--backend", "sqlite", "--data-dir", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "first line")
	assert.Contains(t, lines[2], "200x160")
}

func TestListYAML(t *testing.T) {
	dir := seedStore(t, storage.BackendFile, seeded[:1])

	out, err := execute(t, "list", "-f", "yaml", "--data-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "- id: b\n")
	assert.Contains(t, out, "content: second\n")
}

func TestListRejectsUnknownFormat(t *testing.T) {
	dir := seedStore(t, storage.BackendFile, nil)

	_, err := execute(t, "list", "--format", "xml", "--data-dir", dir)

	assert.ErrorContains(t, err, "unknown format")
}

func TestUnknownBackendFails(t *testing.T) {
	_, err := execute(t, "list", "--backend", "redis", "--data-dir", t.TempDir())

	assert.Error(t, err)
}

func TestExportCommandWritesText(t *testing.T) {
	dir := seedStore(t, storage.BackendFile, seeded)
	target := filepath.Join(t.TempDir(), "board.txt")

	out, err := execute(t, "export", "txt", target, "--data-dir", dir, "--width", "40", "--height", "16")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 notes")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 16)
	assert.Contains(t, string(data), "second")
}

func TestExportCommandRejectsFormat(t *testing.T) {
	dir := seedStore(t, storage.BackendFile, seeded)

	_, err := execute(t, "export", "gif", filepath.Join(t.TempDir(), "x.gif"), "--data-dir", dir)

	assert.ErrorContains(t, err, "unknown export format")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "stickies dev\n", out)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "a b", summarize("a\n  b", 10))
	assert.Equal(t, "abcd…", summarize("abcdefgh", 5))
}
