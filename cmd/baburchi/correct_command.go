package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ragaeeb/baburchi-sub001/internal/balance"
	"github.com/ragaeeb/baburchi-sub001/internal/correct"
	"github.com/ragaeeb/baburchi-sub001/internal/logging"
	"github.com/ragaeeb/baburchi-sub001/internal/noise"
)

func newCorrectCommand(ctx *commandContext) *cobra.Command {
	var originalFile string
	var referenceFile string
	var skipNoise bool

	cmd := &cobra.Command{
		Use:   "correct [original] [reference]",
		Short: "Correct an OCR line (or file of lines) against a reference",
		Long: `Correct merges OCR output with a reference transcript. Pass the two
lines as arguments, or --original-file and --reference-file to correct a
whole document line by line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			opts := ctx.correctionOptions()

			if originalFile != "" || referenceFile != "" {
				if originalFile == "" || referenceFile == "" {
					return errors.New("--original-file and --reference-file must be used together")
				}
				originals, err := readLines(originalFile)
				if err != nil {
					return err
				}
				references, err := readLines(referenceFile)
				if err != nil {
					return err
				}
				for i, line := range originals {
					if skipNoise && correct.IsNoiseFragment(line, noise.Analyze(line)) {
						logger.Debug("skipping noise line", logging.Args(logging.Int("line", i+1))...)
						continue
					}
					warnImbalance(logger, i+1, line)
					ref := ""
					if i < len(references) {
						ref = references[i]
					}
					fmt.Fprintln(cmd.OutOrStdout(), correct.Correct(line, ref, opts))
				}
				return nil
			}

			if len(args) != 2 {
				return errors.New("expected exactly two arguments: original and reference")
			}
			warnImbalance(logger, 1, args[0])
			fmt.Fprintln(cmd.OutOrStdout(), correct.Correct(args[0], args[1], opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&originalFile, "original-file", "", "File holding OCR lines")
	cmd.Flags().StringVar(&referenceFile, "reference-file", "", "File holding reference lines")
	cmd.Flags().BoolVar(&skipNoise, "skip-noise", false, "Drop lines classified as scanner noise")

	return cmd
}

// warnImbalance logs unmatched delimiters; correction proceeds regardless,
// the caller convention is to fix flagged lines upstream.
func warnImbalance(logger *slog.Logger, line int, text string) {
	for _, imb := range balance.Check(text) {
		logger.Warn("unbalanced delimiter",
			logging.Args(
				logging.Int("line", line),
				logging.String("delimiter", string(imb.Delimiter)),
				logging.Int("position", imb.Position),
			)...)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
