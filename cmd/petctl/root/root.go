package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pocketpet/internal/ui"
)

const Version = "0.1.0"

type storeFlags struct {
	store  string
	sqlite string
	dsn    string
}

// NewRootCmd builds the command tree. Each invocation opens the configured
// store, loads the pet, runs one command and closes the store again.
func NewRootCmd() *cobra.Command {
	flags := &storeFlags{}
	cmd := &cobra.Command{
		Use:           "petctl",
		Short:         "Look after your pocket pet from the terminal",
		Long:          "petctl drives a pocketpet profile stored in SQLite, Postgres or memory.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&flags.store, "store", "", "store kind: memory, sqlite or postgres (default from PETSIM_STORE)")
	cmd.PersistentFlags().StringVar(&flags.sqlite, "sqlite", "", "sqlite database path (default from PETSIM_SQLITE_PATH)")
	cmd.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "postgres DSN (default from PETSIM_DB_DSN)")

	cmd.AddCommand(
		newStatusCmd(flags),
		newEatCmd(flags),
		newRenameCmd(flags),
		newShopCmd(flags),
		newBuyCmd(flags),
		newEquipCmd(flags),
		newAchievementsCmd(flags),
		newTickCmd(flags),
		newRunCmd(flags),
	)
	cmd.AddCommand(newActionCmds(flags)...)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
