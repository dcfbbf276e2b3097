// Package cli provides the fichas command-line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/core/ports/driving"
	"github.com/ceplan/fichas/internal/logger"
)

// annotationStandalone marks commands that run without services.
const annotationStandalone = "standalone"

var version = "dev"

// Services wired into the commands.
var (
	fichaService    driving.FichaService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	inputSource     driven.InputSource
)

var (
	bootstrap Bootstrapper
	closer    func() error
)

// Options are the global flags that affect how services are built.
type Options struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// NoStore keeps results in memory for the current run only.
	NoStore bool
}

// Services bundles the driving and driven ports the commands use.
type Services struct {
	Ficha    driving.FichaService
	Catalog  driving.CatalogService
	Settings driving.SettingsService
	Input    driven.InputSource

	// Close releases storage and watch resources. May be nil.
	Close func() error
}

// Bootstrapper builds the services once the global flags are parsed.
type Bootstrapper func(opts Options) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "fichas",
	Short: "Prepare observatory fichas for publishing",
	Long: `fichas cleans the article text of observatory fichas, links numbered
citations to their references and extracts figure and table captions.

Inputs are read from <code>.texto.txt and <code>.refs.txt files in the
input directory, or passed explicitly with --text and --refs.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress warnings")
	rootCmd.PersistentFlags().String("config-dir", "", "configuration directory (default ~/.fichas)")
	rootCmd.PersistentFlags().Bool("no-store", false, "keep results in memory only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// SetBootstrap registers the function that builds services before a
// command runs.
func SetBootstrap(b Bootstrapper) {
	bootstrap = b
}

// SetServices installs already built services.
func SetServices(s *Services) {
	fichaService = s.Ficha
	catalogService = s.Catalog
	settingsService = s.Settings
	inputSource = s.Input
	closer = s.Close
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, then releases services.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, Close())
}

// Close releases the resources held by the services, once.
func Close() error {
	if closer == nil {
		return nil
	}
	c := closer
	closer = nil
	return c()
}

func preRun(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	logger.SetVerbose(verbose)
	logger.SetQuiet(quiet)

	if cmd.Annotations[annotationStandalone] == "true" {
		return nil
	}
	if bootstrap == nil || fichaService != nil {
		return nil
	}

	configDir, _ := cmd.Flags().GetString("config-dir")
	noStore, _ := cmd.Flags().GetBool("no-store")

	services, err := bootstrap(Options{ConfigDir: configDir, NoStore: noStore})
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}
