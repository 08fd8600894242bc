// Command baburchi corrects OCR-degraded Arabic transcripts against
// reference text and locates noisy excerpts inside stored documents.
//
// The engine packages under internal/ do the work; this binary wires them
// to a TOML config, structured logging, and a SQLite-backed corpus.
package main
