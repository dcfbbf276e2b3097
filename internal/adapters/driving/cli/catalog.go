package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/core/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the rubro catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rubros and their code patterns",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogClassifyCmd = &cobra.Command{
	Use:   "classify CODE...",
	Short: "Show the rubro of ficha codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogClassify,
}

var catalogTopicCmd = &cobra.Command{
	Use:   "topic CODE...",
	Short: "Show the label of topic codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCatalogTopic,
}

func init() {
	addFormatFlag(catalogListCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogClassifyCmd)
	catalogCmd.AddCommand(catalogTopicCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	rubros := catalogService.Rubros()
	if format == domain.OutputJSON {
		return printJSON(cmd.OutOrStdout(), rubros)
	}

	out := cmd.OutOrStdout()
	for _, r := range rubros {
		fmt.Fprintln(out, r.Name)
		for _, sub := range r.Subrubros {
			fmt.Fprintf(out, "  %-28s %s\n", sub.Name, sub.Pattern)
		}
	}
	return nil
}

func runCatalogClassify(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	out := cmd.OutOrStdout()
	for _, code := range args {
		class, err := catalogService.Classify(code)
		if err != nil && !errors.Is(err, domain.ErrUnclassified) {
			return err
		}
		fmt.Fprintf(out, "%-10s %s\n", code, class)
	}
	return nil
}

func runCatalogTopic(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	out := cmd.OutOrStdout()
	for _, code := range args {
		fmt.Fprintf(out, "%-4s %s\n", code, catalogService.Topic(code))
	}
	return nil
}
