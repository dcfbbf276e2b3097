// Package ficha implements the text and reference processor for ficha
// content.
//
// Given the raw article text and the raw reference list pasted from a
// source document, the processor:
//
//   - normalises paragraphs (trimming, forced full stops, digit folding)
//   - pulls figure, table and note lines out of the prose
//   - indexes numbered references to the URL found on each line
//   - rewrites citation markers such as [3] or [1, 2] into hyperlinks
//   - pairs removed figure/table headers with their notes as chart entries
//
// The processor is pure: it performs no I/O, keeps no state between calls
// and never fails on malformed lines. A line it cannot understand is passed
// through without enrichment.
package ficha
