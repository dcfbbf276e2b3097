package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ceplan/fichas/internal/adapters/driven/storage/memory"
	"github.com/ceplan/fichas/internal/adapters/driven/writer/dryrun"
	"github.com/ceplan/fichas/internal/connectors/filesystem"
	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/services"
	"github.com/ceplan/fichas/internal/normalisers/ficha"
	"github.com/ceplan/fichas/internal/postprocessors"
	"github.com/ceplan/fichas/internal/postprocessors/audit"
)

const (
	testArticle = "Primer párrafo con cita [1]\nSegundo párrafo [2]"
	testRefs    = "[1] Autor. Available: https://example.org/a\n[2] Otro autor sin enlace."
	testLink    = `<a href="https://example.org/a" target="_blank">[1]</a>`
)

// testEnv exposes the pieces installed by setupTestServices.
var testEnv struct {
	inputDir  string
	results   *memory.ResultStore
	config    *memory.ConfigStore
	published *syncBuffer
}

// syncBuffer is a bytes.Buffer safe for use from several goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// setupTestServices installs in-memory services backed by a temporary
// input directory and returns a cleanup function restoring the globals.
func setupTestServices() func() {
	oldFicha, oldCatalog, oldSettings, oldInput := fichaService, catalogService, settingsService, inputSource
	oldBootstrap, oldCloser := bootstrap, closer

	dir, err := os.MkdirTemp("", "fichas-cli-*")
	if err != nil {
		panic(err)
	}

	catalog, err := services.NewCatalogService(domain.DefaultCatalog())
	if err != nil {
		panic(err)
	}

	testEnv.inputDir = dir
	testEnv.results = memory.NewResultStore()
	testEnv.config = memory.NewConfigStore()
	testEnv.published = &syncBuffer{}

	source := filesystem.New(dir)
	fichaService = services.NewFichaService(
		ficha.NewNormaliser(),
		testEnv.results,
		postprocessors.NewPipeline(audit.New()),
		catalog,
		dryrun.New(testEnv.published),
		2,
	)
	catalogService = catalog
	settingsService = services.NewSettingsService(testEnv.config)
	inputSource = source
	bootstrap = nil
	closer = nil

	resetFlags(rootCmd)

	return func() {
		_ = source.Close()
		_ = os.RemoveAll(dir)
		fichaService, catalogService, settingsService, inputSource = oldFicha, oldCatalog, oldSettings, oldInput
		bootstrap, closer = oldBootstrap, oldCloser
		rootCmd.SetIn(nil)
		resetContexts(rootCmd)
		resetFlags(rootCmd)
	}
}

// writeInput creates the article and reference files of a ficha.
func writeInput(code, article, refs string) {
	must(os.WriteFile(filepath.Join(testEnv.inputDir, code+filesystem.ArticleSuffix), []byte(article), 0o600))
	must(os.WriteFile(filepath.Join(testEnv.inputDir, code+filesystem.ReferenceSuffix), []byte(refs), 0o600))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// resetFlags restores every flag to its default so values do not leak
// between tests sharing rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// resetContexts drops contexts left on commands by ExecuteContext, which
// cobra only propagates to commands without one.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}

// runCmd executes rootCmd with args and returns its combined output.
func runCmd(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
