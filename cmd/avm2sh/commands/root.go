package commands

import (
	"github.com/spf13/cobra"
)

var (
	worldPath string
	world     *World
)

func Execute() error {
	root := &cobra.Command{
		Use:   "avm2sh",
		Short: "Inspect AVM2 application-domain chains",
		Long: `avm2sh builds an application-domain chain from a YAML world file
(or a built-in default) and lets you resolve names against it, enumerate
exports, and poke at domain memory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := LoadWorld(worldPath)
			if err != nil {
				return err
			}
			world = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&worldPath, "world", "", "world file (default: built-in player world)")

	root.AddCommand(namesCmd(), resolveCmd(), replCmd(), versionCmd())
	return root.Execute()
}
