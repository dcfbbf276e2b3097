package domain

const unknownDescription = "Unknown"

// OutputFormat controls how the CLI prints processed fichas.
type OutputFormat string

// Available output formats.
const (
	// OutputAuto picks text on a terminal and JSON otherwise.
	OutputAuto OutputFormat = "auto"

	// OutputText prints a human-readable report.
	OutputText OutputFormat = "text"

	// OutputJSON prints the processed ficha as JSON.
	OutputJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputAuto, OutputText, OutputJSON:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputAuto:
		return "Auto (text on a terminal, JSON when piped)"
	case OutputText:
		return "Text report"
	case OutputJSON:
		return "JSON"
	default:
		return unknownDescription
	}
}

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// Settings holds the user-configurable options.
type Settings struct {
	// DataDir holds the result database. Empty means ~/.fichas/data.
	DataDir string

	// CatalogPath is a TOML catalog file. Empty means the built-in catalog.
	CatalogPath string

	// InputDir is the directory scanned by batch and watch.
	InputDir string

	// Workers bounds how many fichas a batch processes at once.
	Workers int

	// Output is the default CLI output format.
	Output OutputFormat

	// StrictAudit fails a ficha whose text keeps a citation without URL.
	StrictAudit bool
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		InputDir: ".",
		Workers:  DefaultWorkers,
		Output:   OutputAuto,
	}
}

// Normalise replaces invalid values with defaults.
func (s *Settings) Normalise() {
	if s.Workers <= 0 {
		s.Workers = DefaultWorkers
	}
	if !s.Output.IsValid() {
		s.Output = OutputAuto
	}
	if s.InputDir == "" {
		s.InputDir = "."
	}
}
