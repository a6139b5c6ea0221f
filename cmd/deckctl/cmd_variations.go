package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deckhand/internal/cards"
	"deckhand/internal/variations"
)

var variationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "List built-in and --file variations",
	Args:  cobra.NoArgs,
	RunE:  runVariations,
}

var exportCmd = &cobra.Command{
	Use:   "export NAME...",
	Short: "Print variations as YAML",
	Long: `Print variations in the format accepted by --file and the bot's
/variation import command. Built-in variations make a good starting point for
custom ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func runVariations(cmd *cobra.Command, args []string) error {
	all := cards.Presets()
	if variationFile != "" {
		custom, err := variations.LoadFile(variationFile)
		if err != nil {
			return err
		}
		all = append(all, custom...)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCARDS\tPRIORITY\tEXAMPLE")
	for _, v := range all {
		example := "-"
		if v.Size() > 0 {
			example = v.FormatName(v.Values()[0].Display, v.Ranks()[0].Display)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", v.Name(), v.Size(), v.Priority(), example)
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	vs := make([]*cards.Variation, 0, len(args))
	for _, name := range args {
		v, err := resolveVariation(name)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}
	out, err := variations.Marshal(vs...)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
