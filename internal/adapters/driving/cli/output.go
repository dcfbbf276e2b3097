package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ceplan/fichas/internal/core/domain"
)

// addFormatFlag registers --format on a command that prints fichas.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", "", "output format: text, json or auto")
}

// outputFormat resolves the format from the flag, then the settings,
// then the terminal: text on a terminal, JSON otherwise.
func outputFormat(cmd *cobra.Command) (domain.OutputFormat, error) {
	format := domain.OutputAuto
	if settingsService != nil {
		format = settingsService.Get().Output
	}

	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		format = domain.OutputFormat(strings.ToLower(flag))
		if !format.IsValid() {
			return "", fmt.Errorf("unknown output format %q: %w", flag, domain.ErrInvalidInput)
		}
	}

	if format == domain.OutputAuto {
		if isTerminal(cmd.OutOrStdout()) {
			return domain.OutputText, nil
		}
		return domain.OutputJSON, nil
	}
	return format, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printJSON writes v as indented JSON. HTML is left unescaped so the
// anchors in clean text stay readable.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// printFicha writes one processed ficha in the requested format.
func printFicha(w io.Writer, ficha *domain.ProcessedFicha, format domain.OutputFormat) error {
	if format == domain.OutputJSON {
		return printJSON(w, ficha)
	}

	fmt.Fprintf(w, "Ficha %s\n", ficha.Code)
	fmt.Fprintf(w, "  Rubro:     %s\n", ficha.Classification)
	fmt.Fprintf(w, "  Processed: %s\n", ficha.ProcessedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Links:     %d", ficha.Audit.LinkCount)
	if !ficha.Audit.Complete() {
		fmt.Fprintf(w, " (unresolved: %s)", joinInts(ficha.Audit.Unresolved))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "  %s\n", ficha.Content.Summary())

	if body := ficha.Content.Body(); body != "" {
		fmt.Fprintln(w, "\nText:")
		for _, p := range strings.Split(body, "\n") {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}

	if len(ficha.Content.Charts) > 0 {
		fmt.Fprintf(w, "\nCharts (%d):\n", len(ficha.Content.Charts))
		for _, c := range ficha.Content.Charts {
			fmt.Fprintf(w, "  %d. %s %s\n", c.Order, c.Numeration, c.Title)
			fmt.Fprintf(w, "     %s\n", c.Note)
		}
	}

	if ficha.Content.CleanReferences != "" {
		fmt.Fprintln(w, "\nReferences:")
		for _, ref := range strings.Split(ficha.Content.CleanReferences, "\n") {
			fmt.Fprintf(w, "  %s\n", ref)
		}
	}
	return nil
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
