package ficha

import "regexp"

var (
	// tableHeader opens a suppression window: everything up to the next
	// note line is dropped from the prose.
	tableHeader = regexp.MustCompile(`(?i)^Tabla(\s+\d+)?.*$`)

	// noteLine closes a suppression window.
	noteLine = regexp.MustCompile(`(?i)^Nota(\s*)?.*$`)

	// captionLine catches figure captions (and stray note-like lines) in
	// prose that is not being suppressed. Case-sensitive; "Nota?" also
	// matches lines starting with "Not".
	captionLine = regexp.MustCompile(`^(Nota?|Figura)(\s+\d+)?.*$`)

	// referenceNoise is stripped from every reference line: the
	// "Available:" label and a trailing full stop. Space classes include
	// \p{Z} so no-break spaces count as whitespace.
	referenceNoise = regexp.MustCompile(`(?i)\bAvailable:?[\s\p{Z}]*|(\.[\s\p{Z}]*)$`)

	// referenceURL captures the reference number and the first URL after it.
	referenceURL = regexp.MustCompile(`\[(\d+)\].*?(https?://[^\s\p{Z}\[\]]+)`)

	// citationGroup matches an in-text citation marker such as [4] or [1, 2].
	citationGroup = regexp.MustCompile(`\[([\d,\s\p{Z}]+)\]`)
)
