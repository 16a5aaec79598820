package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssplay/internal/catalog"
	"github.com/yacobolo/cssplay/internal/preview"
	"github.com/yacobolo/cssplay/internal/term"
)

const textWidth = 80

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			category, _ := cmd.Flags().GetString("category")
			return listEntries(cmd.OutOrStdout(), a.cat, category)
		},
	}
	cmd.Flags().String("category", "", "Only list this category")
	return cmd
}

func listEntries(w io.Writer, cat *catalog.Catalog, category string) error {
	colors := term.ShouldUseColors(getBool("color", false))

	found := false
	for _, c := range cat.Categories() {
		if category != "" && !strings.EqualFold(c.Name, category) {
			continue
		}
		found = true
		fmt.Fprintln(w, term.RenderStyle(term.StyleCyan, c.Name, colors))
		for _, id := range c.IDs {
			e, _ := cat.Lookup(id)
			fmt.Fprintf(w, "  %-28s %s\n", e.ID, term.RenderStyle(term.StyleGray, e.Description, colors))
		}
	}
	if !found {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an entry with its rule and a terminal preview",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, e := range catalog.Default().Entries() {
				ids = append(ids, e.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			return showEntry(cmd.OutOrStdout(), a.cat, args[0])
		},
	}
}

func showEntry(w io.Writer, cat *catalog.Catalog, id string) error {
	e, ok := cat.Lookup(id)
	if !ok {
		return unknownEntryError(cat, id)
	}
	colors := term.ShouldUseColors(getBool("color", false))

	fmt.Fprintln(w, term.RenderStyle(term.StyleCyan, e.Title, colors))
	fmt.Fprintln(w, term.RenderStyle(term.StyleGray, e.Category, colors))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String(e.Description, textWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rule:")
	fmt.Fprintln(w, "  "+e.Rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	for _, line := range strings.Split(preview.RenderMarkup(e.Preview, buildPreviewOptions()), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
	return nil
}

// unknownEntryError suggests close matches for a mistyped id
func unknownEntryError(cat *catalog.Catalog, id string) error {
	matches := cat.Search(id)
	if len(matches) == 0 {
		return fmt.Errorf("unknown entry %q", id)
	}
	var ids []string
	for _, e := range matches[:min(len(matches), 3)] {
		ids = append(ids, e.ID)
	}
	return fmt.Errorf("unknown entry %q (did you mean %s?)", id, strings.Join(ids, ", "))
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search entry ids and titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()

			w := cmd.OutOrStdout()
			matches := a.cat.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintf(w, "No entries match %q\n", args[0])
				return nil
			}
			for _, e := range matches {
				fmt.Fprintf(w, "%-28s %s\n", e.ID, e.Category)
			}
			return nil
		},
	}
}
