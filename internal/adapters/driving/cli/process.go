package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ceplan/fichas/internal/core/domain"
)

var processCmd = &cobra.Command{
	Use:   "process CODE",
	Short: "Process one ficha",
	Long: `Clean the article text of a ficha, link its citations and extract the
chart captions. The result is stored and printed.

Without --text the input is read from the input directory
(<code>.texto.txt and <code>.refs.txt). Use "-" to read the text from stdin.

Examples:
  fichas process t12
  fichas process r4_apu --text articulo.txt --refs referencias.txt
  pbpaste | fichas process fp3 --text - --refs refs.txt -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringP("text", "t", "", "article text file (- for stdin)")
	processCmd.Flags().StringP("refs", "r", "", "reference list file")
	addFormatFlag(processCmd)
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if fichaService == nil {
		return errors.New("ficha service not configured")
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	input, err := loadInput(cmd, args[0])
	if err != nil {
		return err
	}

	result, err := fichaService.Process(cmd.Context(), *input)
	if err != nil {
		return fmt.Errorf("processing %s: %w", args[0], err)
	}
	return printFicha(cmd.OutOrStdout(), result, format)
}

// loadInput reads the ficha from --text/--refs when given, and from the
// input source otherwise.
func loadInput(cmd *cobra.Command, code string) (*domain.FichaInput, error) {
	textPath, _ := cmd.Flags().GetString("text")
	refsPath, _ := cmd.Flags().GetString("refs")

	if textPath == "" {
		if refsPath != "" {
			return nil, errors.New("--refs requires --text")
		}
		if inputSource == nil {
			return nil, errors.New("input source not configured")
		}
		input, err := inputSource.Get(cmd.Context(), code)
		if err != nil {
			return nil, fmt.Errorf("reading input for %s: %w", code, err)
		}
		return input, nil
	}

	text, err := readInputFile(cmd, textPath)
	if err != nil {
		return nil, err
	}
	var refs string
	if refsPath != "" {
		if refs, err = readInputFile(cmd, refsPath); err != nil {
			return nil, err
		}
	}
	return &domain.FichaInput{Code: code, ArticleText: text, ReferenceText: refs}, nil
}

func readInputFile(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
