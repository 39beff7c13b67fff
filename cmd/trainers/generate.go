package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"luchik.app/trainers/internal/domain"
)

type generateFlags struct {
	tier     int
	maxDigit int
	count    int
	speed    float64
	seed     int64
}

func (a *app) generateCmd() *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one generated session as JSON",
	}
	cmd.PersistentFlags().IntVar(&f.tier, "tier", 2, "range tier 1-4 (1-10 .. 1000-10000)")
	cmd.PersistentFlags().IntVar(&f.maxDigit, "max-digit", 9, "largest digit allowed, 2-9")
	cmd.PersistentFlags().IntVar(&f.count, "count", 10, "number of values, 2-99")
	cmd.PersistentFlags().Float64Var(&f.speed, "speed", 1.0, "seconds per value, 0.05-10")
	cmd.PersistentFlags().Int64Var(&f.seed, "seed", 0, "random seed (0 picks one)")

	cmd.AddCommand(&cobra.Command{
		Use:   "quick-math",
		Short: "Quick-math sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.sessionRequest(cmd, f)
			if err != nil {
				return err
			}
			s, _, err := a.service().QuickMath(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "flash-cards",
		Short: "Abacus flash-card session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.sessionRequest(cmd, f)
			if err != nil {
				return err
			}
			s, _, err := a.service().FlashCards(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	})
	return cmd
}

func (a *app) sessionRequest(cmd *cobra.Command, f *generateFlags) (domain.SessionRequest, error) {
	ok, conflicts, err := a.validator().ValidateSession(cmd.Context(), f.tier, f.maxDigit, f.count, f.speed)
	if err != nil {
		return domain.SessionRequest{}, err
	}
	if !ok {
		e := domain.InvalidParameters(conflicts)
		for _, c := range conflicts {
			e.Message += "; " + c.Field + ": " + c.Message
		}
		return domain.SessionRequest{}, e
	}
	return domain.SessionRequest{
		Tier:     domain.Tier(f.tier),
		MaxDigit: f.maxDigit,
		Count:    f.count,
		Speed:    f.speed,
		Seed:     f.seed,
	}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
