package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish CODE...",
	Short: "Send stored results to the platform",
	Long: `Publish stored results through the configured ficha writer, updating
the summary, text, charts and references in that order. Fichas are
published one at a time and the command stops at the first failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}

	for _, code := range args {
		if err := fichaService.Publish(cmd.Context(), code); err != nil {
			return fmt.Errorf("publishing %s: %w", code, err)
		}
	}
	return nil
}
