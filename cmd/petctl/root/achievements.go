package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocketpet/internal/domain/achievement"
	"pocketpet/internal/ui"
)

func newAchievementsCmd(f *storeFlags) *cobra.Command {
	var unlockedOnly bool
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement board by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			board, err := p.Achievements()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Unlocked", ui.Progress(board.Unlocked, len(board.Achievements))))
			fmt.Fprintln(out, ui.LabelValue("Care streak", fmt.Sprintf("%d day(s)", board.Streak)))

			for _, cat := range achievement.Categories {
				var rows []achievement.Achievement
				for _, a := range board.Achievements {
					if a.Category() != cat || (unlockedOnly && !a.Unlocked) {
						continue
					}
					rows = append(rows, a)
				}
				if len(rows) == 0 {
					continue
				}
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(string(cat)))
				for _, a := range rows {
					mark := ui.Muted.Render("·")
					if a.Unlocked {
						mark = ui.Good.Render("✓")
					}
					fmt.Fprintf(out, "%s %s %-22s %s %s\n", mark, a.Icon, a.Name, ui.Medal(a.Level), ui.Progress(a.Progress, a.MaxProgress))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&unlockedOnly, "unlocked", false, "only show unlocked achievements")
	return cmd
}
