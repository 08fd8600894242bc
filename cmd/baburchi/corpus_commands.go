package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ragaeeb/baburchi-sub001/internal/corpus"
)

func newCorpusCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCorpusAddCommand(ctx))
	cmd.AddCommand(newCorpusListCommand(ctx))
	cmd.AddCommand(newCorpusRemoveCommand(ctx))
	return cmd
}

func (c *commandContext) openStore() (*corpus.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return corpus.Open(cfg.CorpusPath)
}

func newCorpusAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <file>...",
		Short: "Store a document; each file's form-feed sections become pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected a document name and at least one file")
			}
			var pages []string
			for _, path := range args[1:] {
				filePages, err := readPages(path)
				if err != nil {
					return err
				}
				pages = append(pages, filePages...)
			}
			if len(pages) == 0 {
				return errors.New("no non-empty pages found")
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			doc, err := store.AddDocument(cmd.Context(), args[0], pages)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%d pages) as %s\n", doc.Name, doc.PageCount, doc.ID)
			return nil
		},
	}
}

func newCorpusListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			docs, err := store.Documents(cmd.Context())
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "corpus is empty")
				return nil
			}
			rows := make([][]string, 0, len(docs))
			for _, doc := range docs {
				rows = append(rows, []string{
					doc.ID,
					doc.Name,
					fmt.Sprintf("%d", doc.PageCount),
					doc.CreatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Pages", "Added"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newCorpusRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stored document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one document ID")
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}
