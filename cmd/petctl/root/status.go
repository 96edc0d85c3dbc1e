package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pocketpet/internal/app/profile"
	"pocketpet/internal/ui"
)

func newStatusCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show needs, mood, evolution and wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			view, err := p.Status(ctx)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func renderStatus(w io.Writer, v profile.StatusView) {
	n := v.Pet.Needs
	fmt.Fprintln(w, ui.Heading(ui.IconPaw, v.Pet.Name))
	fmt.Fprintln(w, ui.LabelValue("Mood", ui.Emotion(v.Pet.Emotion)))
	fmt.Fprintln(w, "")

	meters := strings.Join([]string{
		ui.Bar("Hunger", n.Hunger),
		ui.Bar("Happiness", n.Happiness),
		ui.Bar("Energy", n.Energy),
		ui.Bar("Health", n.Health),
	}, "\n")
	fmt.Fprintln(w, ui.Panel.Render(meters))

	if len(v.StatusEffects) > 0 {
		fmt.Fprintln(w, ui.Bad.Render(strings.Join(v.StatusEffects, " ")))
	}
	if o := v.Outlook; o.IsLosingHealth {
		fmt.Fprintf(w, "%s %s\n", ui.Warn.Render(ui.IconWarn+" losing health"),
			ui.Muted.Render(fmt.Sprintf("(-%.1f over the next %s)", o.EstimatedLoss, formatSeconds(o.HorizonSeconds))))
	}
	fmt.Fprintln(w, "")

	e := v.Evolution
	fmt.Fprintln(w, ui.H2.Render(ui.IconSparkle+" Evolution"))
	fmt.Fprintln(w, ui.LabelValue("Stage", fmt.Sprintf("%s (%s path)", e.Stage, e.Path)))
	fmt.Fprintln(w, ui.LabelValue("Level", fmt.Sprintf("%d %s", e.Level, ui.Progress(e.Experience, e.ExperienceForNextLevel))))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, ui.LabelValue(ui.IconCoin+" Coins", v.Coins))
	fmt.Fprintln(w, ui.LabelValue(ui.IconTrophy+" Achievements", fmt.Sprintf("%s, streak %d", ui.Progress(v.Achievements.Unlocked, v.Achievements.Total), v.Achievements.Streak)))
	if len(v.Equipped) > 0 {
		fmt.Fprintln(w, ui.LabelValue("Wearing", strings.Join(v.Equipped, ", ")))
	}
	for name, msg := range v.LastErrors {
		fmt.Fprintln(w, ui.Bad.Render(fmt.Sprintf("%s %s: %s", ui.IconError, name, msg)))
	}
}

func formatSeconds(s float64) string {
	switch {
	case s >= 3600:
		return fmt.Sprintf("%.0fh", s/3600)
	case s >= 60:
		return fmt.Sprintf("%.0fm", s/60)
	default:
		return fmt.Sprintf("%.0fs", s)
	}
}
