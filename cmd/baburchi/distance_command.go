package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ragaeeb/baburchi-sub001/internal/editdist"
)

func newDistanceCommand(ctx *commandContext) *cobra.Command {
	var maxDistance int

	cmd := &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Show the edit distance and similarity ratio of two strings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("expected exactly two arguments")
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("max") {
				d, err := editdist.BoundedDistance(args[0], args[1], maxDistance)
				if err != nil {
					return err
				}
				if d > maxDistance {
					fmt.Fprintf(out, "distance: > %d (cutoff exceeded)\n", maxDistance)
				} else {
					fmt.Fprintf(out, "distance: %d\n", d)
				}
				return nil
			}

			fmt.Fprintf(out, "distance: %d\n", editdist.Distance(args[0], args[1]))
			fmt.Fprintf(out, "ratio:    %.3f\n", editdist.SimilarityRatio(args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDistance, "max", 0, "Cutoff for the banded distance variant")

	return cmd
}
