package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceplan/fichas/internal/core/domain"
)

func TestProcessCmd_Use(t *testing.T) {
	assert.Equal(t, "process CODE", processCmd.Use)
}

func TestProcessCmd_Flags(t *testing.T) {
	text := processCmd.Flags().Lookup("text")
	require.NotNil(t, text)
	assert.Equal(t, "t", text.Shorthand)

	refs := processCmd.Flags().Lookup("refs")
	require.NotNil(t, refs)
	assert.Equal(t, "r", refs.Shorthand)

	format := processCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "o", format.Shorthand)
}

func TestProcessCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCmd("process")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestProcessCmd_FromInputDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	writeInput("t1", testArticle, testRefs)

	out, err := runCmd("process", "t1", "-o", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Ficha t1")
	assert.Contains(t, out, "Megatendencias / Megatendencias")
	assert.Contains(t, out, "Links:     1 (unresolved: 2)")
	assert.Contains(t, out, "Primer párrafo con cita "+testLink+".")
	assert.Contains(t, out, "Segundo párrafo [2]")
	assert.Contains(t, out, "[2] Otro autor sin enlace")

	stored, err := testEnv.results.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, testArticle, stored.Input.ArticleText)
}

func TestProcessCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	writeInput("fp2", testArticle, testRefs)

	out, err := runCmd("process", "fp2")
	require.NoError(t, err)

	assert.Contains(t, out, testLink, "HTML must not be escaped")

	var result domain.ProcessedFicha
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "fp2", result.Code)
	assert.Equal(t, "Fuerzas primarias", result.Classification.Rubro)
	assert.Equal(t, []int{1}, result.Audit.Linked)
	assert.Equal(t, []int{2}, result.Audit.Unresolved)
}

func TestProcessCmd_FromFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	textPath := filepath.Join(dir, "articulo.txt")
	refsPath := filepath.Join(dir, "refs.txt")
	require.NoError(t, os.WriteFile(textPath, []byte(testArticle), 0o600))
	require.NoError(t, os.WriteFile(refsPath, []byte(testRefs), 0o600))

	out, err := runCmd("process", "r4_apu", "--text", textPath, "--refs", refsPath, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Ficha r4_apu")
	assert.Contains(t, out, "Riesgos / Riesgo territorial")
	assert.Contains(t, out, testLink)
}

func TestProcessCmd_TextFromStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("Texto leído de la entrada\nSegunda línea"))

	out, err := runCmd("process", "S7", "--text", "-", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Eventos futuros / Señal débil")
	assert.Contains(t, out, "Texto leído de la entrada.")
	assert.Contains(t, out, "Segunda línea")
}

func TestProcessCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "refs without text", args: []string{"process", "t1", "--refs", "refs.txt"}, want: "--refs requires --text"},
		{name: "missing input", args: []string{"process", "t9"}, want: "reading input for t9"},
		{name: "missing text file", args: []string{"process", "t1", "--text", "/nonexistent/a.txt"}, want: "reading /nonexistent/a.txt"},
		{name: "unknown format", args: []string{"process", "t1", "-o", "xml"}, want: "unknown output format"},
		{name: "invalid code", args: []string{"process", "a/b", "--text", "-"}, want: "processing a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()
			rootCmd.SetIn(strings.NewReader("Texto"))

			_, err := runCmd(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcessCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	fichaService = nil

	_, err := runCmd("process", "t1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ficha service not configured")
}
