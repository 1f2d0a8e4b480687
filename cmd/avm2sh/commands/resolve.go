package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	avm2 "github.com/nickjhughes/ruffle"
)

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <domain> <name>",
		Short: "Resolve qualified-name text against a domain",
		Long: `Resolves a textual qualified name ("Foo", "flash.utils::ByteArray",
"Vector.<int>") from the given domain, walking the parent chain. Vector
generic syntax is desugared and specialized on the fly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := world.Get(args[0])
			if err != nil {
				return err
			}
			return resolveAndPrint(d, args[1])
		},
	}
}

func resolveAndPrint(d *avm2.Domain, text string) error {
	v, err := d.GetDefinedValueHandlingVector(text)
	if err != nil {
		return err
	}
	fmt.Println(describeValue(v))
	return nil
}

func describeValue(v avm2.Value) string {
	switch x := v.(type) {
	case *avm2.Class:
		switch {
		case x.Base() != nil:
			return fmt.Sprintf("class %s (specialization of %s)", x.Name(), x.Base().Name())
		case x.IsGeneric():
			return fmt.Sprintf("generic class %s", x.Name())
		default:
			return fmt.Sprintf("class %s", x.Name())
		}
	default:
		return fmt.Sprintf("%v", v)
	}
}
