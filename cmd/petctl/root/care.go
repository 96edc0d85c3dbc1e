package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pocketpet/internal/domain/pet"
	"pocketpet/internal/ui"
)

var actionShort = map[pet.ActionType]string{
	pet.ActionFeed:  "Feed your pet",
	pet.ActionPlay:  "Play with your pet (earns coins)",
	pet.ActionSleep: "Put your pet to bed",
	pet.ActionHeal:  "Give your pet medicine",
}

func newActionCmds(f *storeFlags) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(pet.Actions))
	for _, a := range pet.Actions {
		cmds = append(cmds, &cobra.Command{
			Use:   string(a),
			Short: actionShort[a],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				p, cleanup, err := openProfile(ctx, f)
				if err != nil {
					return err
				}
				defer cleanup()

				res, err := p.Perform(ctx, a)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !res.Applied {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s doesn't need to %s right now.", res.State.Name, a)))
				} else {
					fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s %s: done", ui.IconPaw, a)))
				}
				view, err := p.Status(ctx)
				if err != nil {
					return err
				}
				renderStatus(out, view)
				return nil
			},
		})
	}
	return cmds
}

func newEatCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eat <item>",
		Short: "Feed an owned food item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := p.Eat(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s enjoyed the %s", s.Name, args[0])))
			view, err := p.Status(ctx)
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newRenameCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Give your pet a new name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := p.Rename(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", s.Name))
			return nil
		},
	}
}
