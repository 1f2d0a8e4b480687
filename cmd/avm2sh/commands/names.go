package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	avm2 "github.com/nickjhughes/ruffle"
)

func namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names [domain]",
		Short: "List locally exported names, per domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				d, err := world.Get(args[0])
				if err != nil {
					return err
				}
				printNames(args[0], d)
				return nil
			}
			for _, name := range world.Order {
				printNames(name, world.Domains[name])
			}
			return nil
		},
	}
}

func printNames(label string, d *avm2.Domain) {
	names := d.DefinedNames()
	fmt.Printf("%s (%d definitions, memory %d bytes)\n", label, len(names), d.Memory().Len())
	for _, q := range names {
		fmt.Printf("  %s\n", q)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the subsystem version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(avm2.Version)
		},
	}
}
