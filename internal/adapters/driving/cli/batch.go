package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch [CODE...]",
	Short: "Process several fichas",
	Long: `Process fichas from the input directory concurrently.

Without arguments every complete ficha in the directory is processed.
A failed ficha does not stop the others; the command fails at the end
if any ficha failed.`,
	RunE: runBatch,
}

func init() {
	addFormatFlag(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

// batchEntry is the JSON shape of one batch outcome.
type batchEntry struct {
	Code   string                 `json:"code"`
	OK     bool                   `json:"ok"`
	Error  string                 `json:"error,omitempty"`
	Result *domain.ProcessedFicha `json:"result,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}
	if inputSource == nil {
		return errors.New("input source not configured")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	items, inputs, slots, err := collectInputs(cmd, args)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		cmd.Println("No fichas found.")
		return nil
	}

	logger.Section(fmt.Sprintf("batch of %d fichas", len(inputs)))
	for i, item := range fichaService.ProcessBatch(cmd.Context(), inputs) {
		items[slots[i]] = item
	}

	failures := 0
	entries := make([]batchEntry, len(items))
	for i, item := range items {
		entries[i] = batchEntry{Code: item.Code, OK: item.Err == nil, Result: item.Result}
		if item.Err != nil {
			entries[i].Error = item.Err.Error()
			failures++
		}
	}

	if format == domain.OutputJSON {
		if err := printJSON(cmd.OutOrStdout(), entries); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		for _, e := range entries {
			if !e.OK {
				fmt.Fprintf(out, "FAIL  %-10s %s\n", e.Code, e.Error)
				continue
			}
			fmt.Fprintf(out, "ok    %-10s %-40s links=%d unresolved=%d charts=%d\n",
				e.Code, e.Result.Classification, e.Result.Audit.LinkCount,
				len(e.Result.Audit.Unresolved), len(e.Result.Content.Charts))
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d fichas failed", failures, len(items))
	}
	return nil
}

// collectInputs loads the requested codes, or every listed input when no
// code is given. It returns one item per ficha in argument order, with
// unreadable codes already failed, and the inputs still to process;
// slots[i] is the position of inputs[i] in items.
func collectInputs(cmd *cobra.Command, codes []string) ([]domain.BatchItem, []domain.FichaInput, []int, error) {
	ctx := cmd.Context()
	if len(codes) == 0 {
		inputs, err := inputSource.List(ctx)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("listing inputs: %w", err)
		}
		slots := make([]int, len(inputs))
		for i := range slots {
			slots[i] = i
		}
		return make([]domain.BatchItem, len(inputs)), inputs, slots, nil
	}

	items := make([]domain.BatchItem, len(codes))
	var inputs []domain.FichaInput
	var slots []int
	for i, code := range codes {
		input, err := inputSource.Get(ctx, code)
		if err != nil {
			items[i] = domain.BatchItem{Code: code, Err: err}
			continue
		}
		inputs = append(inputs, *input)
		slots = append(slots, i)
	}
	return items, inputs, slots, nil
}
