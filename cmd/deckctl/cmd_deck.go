package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deckhand/internal/cards"
	"deckhand/internal/variations"
)

var (
	drawCount  int
	drawSorted bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a fresh deck from bottom to top",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw cards from the top of a fresh deck",
	Args:  cobra.NoArgs,
	RunE:  runDraw,
}

var compareCmd = &cobra.Command{
	Use:   "compare VALUE RANK VALUE RANK",
	Short: "Compare two cards under the variation's ordering",
	Example: `  deckctl compare A ♤ K ♦
  deckctl --variation tarot compare Page Cups Ten Wands`,
	Args: cobra.ExactArgs(4),
	RunE: runCompare,
}

// resolveVariation finds name among the presets and the --file variations.
func resolveVariation(name string) (*cards.Variation, error) {
	if v, ok := cards.Preset(name); ok {
		return v, nil
	}
	if variationFile == "" {
		return nil, fmt.Errorf("unknown variation %q", name)
	}
	vs, err := variations.LoadFile(variationFile)
	if err != nil {
		return nil, err
	}
	for _, v := range vs {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("variation %q not found in %s", name, variationFile)
}

func buildDeck(cmd *cobra.Command) (*cards.Deck, error) {
	v, err := resolveVariation(variationName)
	if err != nil {
		return nil, err
	}

	var opts []cards.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cards.WithRNG(rand.New(rand.NewPCG(seed, seed))))
	}
	d := cards.New(v, !ordered, opts...)
	logger.Debug("deck built",
		zap.String("variation", v.Name()),
		zap.Int("size", d.Size()),
		zap.Bool("shuffled", !ordered),
	)
	return d, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := buildDeck(cmd)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), d.String())
	return nil
}

func runDraw(cmd *cobra.Command, args []string) error {
	d, err := buildDeck(cmd)
	if err != nil {
		return err
	}
	ok, drawn := d.Draw(drawCount)
	if !ok {
		return fmt.Errorf("cannot draw %d from a deck of %d", drawCount, d.Size())
	}
	if drawSorted {
		if err := d.Variation().Sort(drawn); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, c := range drawn {
		fmt.Fprintln(out, c.Name())
	}
	fmt.Fprintf(out, "(%d left)\n", d.Size())
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	v, err := resolveVariation(variationName)
	if err != nil {
		return err
	}
	a := cards.NewCard(v, args[0], args[1])
	b := cards.NewCard(v, args[2], args[3])

	c, err := v.Compare(a, b)
	if err != nil {
		return err
	}

	rel := "ties with"
	switch {
	case c > 0:
		rel = "beats"
	case c < 0:
		rel = "loses to"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s priority)\n", a, rel, b, strings.ToLower(v.Priority().String()))
	return nil
}
