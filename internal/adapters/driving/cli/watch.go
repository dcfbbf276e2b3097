package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reprocess fichas when their input files change",
	Long: `Watch the input directory and process a ficha each time its
<code>.texto.txt or <code>.refs.txt file is saved. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("initial", false, "process every existing ficha before watching")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}
	if inputSource == nil {
		return errors.New("input source not configured")
	}
	ctx := cmd.Context()

	if initial, _ := cmd.Flags().GetBool("initial"); initial {
		inputs, err := inputSource.List(ctx)
		if err != nil {
			return fmt.Errorf("listing inputs: %w", err)
		}
		for _, item := range fichaService.ProcessBatch(ctx, inputs) {
			reportWatch(cmd, item.Code, item.Err)
		}
	}

	changes, err := inputSource.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching inputs: %w", err)
	}
	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	for change := range changes {
		if change.Removed {
			logger.Ficha(change.Code).Info("input removed")
			continue
		}
		_, err := fichaService.Process(ctx, change.Input)
		reportWatch(cmd, change.Code, err)
	}
	return nil
}

func reportWatch(cmd *cobra.Command, code string, err error) {
	if err != nil {
		logger.Ficha(code).Warn("%v", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "processed %s\n", code)
}
