package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	htmlDoc := `
	<html>
	<head>
		<script>var amount = 999999;</script>
		<style>.claim { color: red; }</style>
	</head>
	<body>
		<p>policy no: ABC-12345</p>
		<p>Incident Date: 05/12/2025</p>
		<p>Collision with another car.</p>
	</body>
	</html>
	`

	text, err := StripHTML(htmlDoc)
	require.NoError(t, err)

	assert.Contains(t, text, "policy no: ABC-12345")
	assert.Contains(t, text, "05/12/2025")
	assert.NotContains(t, text, "999999", "script content must not leak into the narrative")
	assert.NotContains(t, text, "color: red")
}

func TestReadReport(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "claim.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("plain narrative"), 0644))

	htmlPath := filepath.Join(dir, "claim.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<body><p>html narrative</p></body>"), 0644))

	text, err := ReadReport(txtPath)
	require.NoError(t, err)
	assert.Equal(t, "plain narrative", text)

	text, err = ReadReport(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, "html narrative", text)

	_, err = ReadReport(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestReadFrom(t *testing.T) {
	text, err := ReadFrom(strings.NewReader("narrative from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "narrative from stdin", text)
}

func TestListReports(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.txt", "a.html", "notes.md", "skip.pdf", ".hidden.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	paths, err := ListReports(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "notes.md"),
	}
	assert.Equal(t, want, paths)
}
