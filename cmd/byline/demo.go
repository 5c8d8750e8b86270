package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample graph and print its derived views",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc := a.newService()

			g, err := seedSample(ctx, svc)
			if err != nil {
				return fmt.Errorf("seed sample graph: %w", err)
			}
			author1, author2 := g.authors[0], g.authors[1]
			mag1 := g.magazines[0]
			out := cmd.OutOrStdout()

			for _, art := range svc.Registry.Articles() {
				fmt.Fprintf(out, "Title: %s, Author: %s, Magazine: %s\n",
					art.Title(), art.Author().Name(), art.Magazine().Name())
			}

			mags, err := svc.MagazinesByAuthor(ctx, author1)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(mags))
			for _, m := range mags {
				names = append(names, m.Name())
			}
			printList(out, "Magazines by "+author1.Name(), names)

			areas, err := svc.TopicAreas(ctx, author2)
			if err != nil {
				return err
			}
			printList(out, "Topic areas of "+author2.Name(), areas)

			summary, err := svc.Summarize(ctx, mag1)
			if err != nil {
				return err
			}
			printList(out, "Contributors to "+mag1.Name(), summary.Contributors)
			printList(out, "Titles in "+mag1.Name(), summary.Titles)

			top, err := svc.TopPublisher(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Top publisher: %s\n", top.Name())
			return nil
		}),
	}
}

func printList(w io.Writer, heading string, items []string) {
	fmt.Fprintf(w, "%s: %s\n", heading, strings.Join(items, ", "))
}

