package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/core/domain"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Inspect stored results",
}

var resultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results",
	Args:  cobra.NoArgs,
	RunE:  runResultList,
}

var resultShowCmd = &cobra.Command{
	Use:   "show CODE",
	Short: "Show a stored result",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultShow,
}

var resultDeleteCmd = &cobra.Command{
	Use:   "delete CODE",
	Short: "Delete a stored result",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultDelete,
}

func init() {
	addFormatFlag(resultListCmd)
	addFormatFlag(resultShowCmd)
	resultCmd.AddCommand(resultListCmd)
	resultCmd.AddCommand(resultShowCmd)
	resultCmd.AddCommand(resultDeleteCmd)
	rootCmd.AddCommand(resultCmd)
}

func runResultList(cmd *cobra.Command, _ []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	fichas, err := fichaService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing results: %w", err)
	}

	if format == domain.OutputJSON {
		return printJSON(cmd.OutOrStdout(), fichas)
	}

	if len(fichas) == 0 {
		cmd.Println("No stored results.")
		return nil
	}
	out := cmd.OutOrStdout()
	for i := range fichas {
		f := &fichas[i]
		fmt.Fprintf(out, "%-10s %-40s links=%-3d unresolved=%-3d %s\n",
			f.Code, f.Classification, f.Audit.LinkCount, len(f.Audit.Unresolved),
			f.ProcessedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runResultShow(cmd *cobra.Command, args []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	ficha, err := fichaService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting result %s: %w", args[0], err)
	}
	return printFicha(cmd.OutOrStdout(), ficha, format)
}

func runResultDelete(cmd *cobra.Command, args []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}

	if err := fichaService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting result %s: %w", args[0], err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
