package root

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	items "pocketpet/internal/domain/inventory"
	"pocketpet/internal/ui"
)

func newShopCmd(f *storeFlags) *cobra.Command {
	var itemType string
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List the item catalog with prices and ownership",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if itemType != "" && !slices.Contains(items.Types, items.ItemType(itemType)) {
				return fmt.Errorf("unknown item type %q", itemType)
			}
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			inv, err := p.Inventory()
			if err != nil {
				return err
			}
			list := inv.Items
			if itemType != "" {
				if list, err = p.ItemsByType(items.ItemType(itemType)); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue(ui.IconCoin+" Coins", inv.Coins))
			fmt.Fprintln(out, "")
			renderItems(out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&itemType, "type", "", "only list one item type (accessory, outfit, food, decoration, background)")
	return cmd
}

func renderItems(w io.Writer, list []items.Item) {
	for _, it := range list {
		state := ui.Muted.Render(fmt.Sprintf("%d coins", it.Price))
		switch {
		case it.Equipped:
			state = ui.Gold.Render("equipped")
		case it.Owned:
			state = ui.Good.Render("owned")
		}
		fmt.Fprintf(w, "%s %-14s %-11s %s  %s\n", it.Icon, it.ID, it.Type, state, ui.Muted.Render(it.Description))
	}
}

func newBuyCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy an item from the shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			it, err := p.Buy(ctx, args[0])
			if err != nil {
				return err
			}
			inv, err := p.Inventory()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("bought"), it.Name, ui.Muted.Render(fmt.Sprintf("(%d coins left)", inv.Coins)))
			return nil
		},
	}
}

func newEquipCmd(f *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item>",
		Short: "Equip an owned item, or take it off if it is already equipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, cleanup, err := openProfile(ctx, f)
			if err != nil {
				return err
			}
			defer cleanup()

			it, err := p.ToggleEquip(ctx, args[0])
			if err != nil {
				return err
			}
			verb := "took off"
			if it.Equipped {
				verb = "equipped"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(verb), it.Name)
			return nil
		},
	}
}
