// Package correct orchestrates tokenization, alignment, and footnote
// reconciliation into line correction and excerpt search.
//
// Correct merges an OCR line with its reference transcript into a corrected
// line. CorrectReferences does the same for footnote lines matched by their
// marker digits. AlignSegments redistributes out-of-shape OCR segments onto
// a target's line boundaries, and FindBestMatch/FindAllMatches locate which
// stored page a noisy excerpt came from.
//
// Everything here is a pure function of its inputs; no state survives a
// call, so independent call sites may run concurrently without coordination.
package correct
