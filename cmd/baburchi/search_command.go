package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ragaeeb/baburchi-sub001/internal/corpus"
	"github.com/ragaeeb/baburchi-sub001/internal/correct"
	"github.com/ragaeeb/baburchi-sub001/internal/logging"
)

const previewRunes = 60

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var files []string
	var documentID string
	var all bool
	var minScore float64

	cmd := &cobra.Command{
		Use:   "search <excerpt>",
		Short: "Locate which page a noisy excerpt came from",
		Long: `Search scores the excerpt against pages from --file arguments, a stored
corpus document (--doc), or every stored document when neither is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one excerpt argument")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			pages, labels, err := collectPages(cmd, ctx, files, documentID)
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				return errors.New("no pages to search; pass --file or add corpus documents")
			}
			logger.Debug("searching pages", logging.Args(logging.Int("pages", len(pages)))...)

			floor := cfg.MinMatchScore
			if cmd.Flags().Changed("min-score") {
				floor = minScore
			}

			out := cmd.OutOrStdout()
			if all {
				matches := correct.FindAllMatches(pages, args[0], floor)
				if len(matches) == 0 {
					fmt.Fprintln(out, "no matches")
					return nil
				}
				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, []string{
						labels[m.Index],
						colorScore(fmt.Sprintf("%.3f", m.Score), m.Score),
						preview(pages[m.Index]),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Page", "Score", "Preview"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			}

			best, ok := correct.FindBestMatch(pages, args[0])
			if !ok {
				fmt.Fprintln(out, "no match")
				return nil
			}
			fmt.Fprintf(out, "%s  score=%s\n%s\n",
				labels[best.Index],
				colorScore(fmt.Sprintf("%.3f", best.Score), best.Score),
				preview(pages[best.Index]))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&files, "file", nil, "Text file of pages separated by form feeds (repeatable)")
	cmd.Flags().StringVar(&documentID, "doc", "", "Search a single stored document by ID")
	cmd.Flags().BoolVar(&all, "all", false, "List every page above the relevance floor")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Relevance floor (overrides config)")

	return cmd
}

// collectPages gathers page texts plus a printable label per page.
func collectPages(cmd *cobra.Command, ctx *commandContext, files []string, documentID string) ([]string, []string, error) {
	if len(files) > 0 {
		var pages, labels []string
		for _, path := range files {
			filePages, err := readPages(path)
			if err != nil {
				return nil, nil, err
			}
			for i, page := range filePages {
				pages = append(pages, page)
				labels = append(labels, fmt.Sprintf("%s:%d", path, i+1))
			}
		}
		return pages, labels, nil
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := corpus.Open(cfg.CorpusPath)
	if err != nil {
		return nil, nil, err
	}
	defer store.Close()

	var docs []corpus.Document
	if documentID != "" {
		docs = []corpus.Document{{ID: documentID, Name: documentID}}
	} else {
		docs, err = store.Documents(cmd.Context())
		if err != nil {
			return nil, nil, err
		}
	}

	var pages, labels []string
	for _, doc := range docs {
		docPages, err := store.Pages(cmd.Context(), doc.ID)
		if err != nil {
			return nil, nil, err
		}
		for i, page := range docPages {
			pages = append(pages, page)
			labels = append(labels, fmt.Sprintf("%s:%d", doc.Name, i+1))
		}
	}
	return pages, labels, nil
}

// readPages splits a file into pages on form-feed characters; a file with
// no form feeds is a single page.
func readPages(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	joined := strings.Join(lines, "\n")
	var pages []string
	for _, page := range strings.Split(joined, "\f") {
		page = strings.TrimSpace(page)
		if page != "" {
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func preview(page string) string {
	page = strings.Join(strings.Fields(page), " ")
	if utf8.RuneCountInString(page) <= previewRunes {
		return page
	}
	runes := []rune(page)
	return string(runes[:previewRunes]) + "…"
}
