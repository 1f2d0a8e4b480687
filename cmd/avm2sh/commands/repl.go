// repl.go — interactive shell over the loaded world
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	avm2 "github.com/nickjhughes/ruffle"
)

const (
	historyFile = ".avm2sh_history"
	promptMain  = "==> "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

var replHelp = `Commands:
  names [domain]                   List a domain's local exports (default: all)
  resolve <domain> <name>          Resolve qualified-name text (Vector.<T> ok)
  export <domain> <name> [generic] Export a fresh class under <name>
  mem <domain> len                 Show domain memory length
  mem <domain> grow <n>            Resize domain memory to n bytes
  mem <domain> r8|r32 <off>        Read a byte / little-endian u32
  mem <domain> w8|w32 <off> <val>  Write a byte / little-endian u32
  help                             Show this help
  quit                             Exit
`

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive domain shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}
}

func runRepl() {
	fmt.Printf("avm2sh %s — %d domain(s) loaded. Type help for commands, quit to exit.\n",
		avm2.Version, len(world.Order))

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			fmt.Print(replHelp)
		default:
			if err := dispatch(fields); err != nil {
				fmt.Fprintln(os.Stderr, red(err.Error()))
			}
		}
	}
}

func dispatch(fields []string) error {
	switch fields[0] {
	case "names":
		domain := ""
		if len(fields) > 1 {
			domain = fields[1]
		}
		if domain != "" {
			d, err := world.Get(domain)
			if err != nil {
				return err
			}
			printNames(domain, d)
			return nil
		}
		for _, name := range world.Order {
			printNames(name, world.Domains[name])
		}
		return nil

	case "resolve":
		if len(fields) != 3 {
			return fmt.Errorf("usage: resolve <domain> <name>")
		}
		d, err := world.Get(fields[1])
		if err != nil {
			return err
		}
		v, err := d.GetDefinedValueHandlingVector(fields[2])
		if err != nil {
			return err
		}
		fmt.Println(blue(describeValue(v)))
		return nil

	case "export":
		if len(fields) < 3 {
			return fmt.Errorf("usage: export <domain> <name> [generic]")
		}
		d, err := world.Get(fields[1])
		if err != nil {
			return err
		}
		qname := avm2.ParseQName(fields[2])
		generic := len(fields) > 3 && fields[3] == "generic"

		var class *avm2.Class
		if generic {
			class = avm2.NewGenericClass(qname)
		} else {
			class = avm2.NewClass(qname)
		}
		already := d.HasDefinition(qname)
		script := avm2.NewScript(d)
		script.DefineValue(qname, class)
		d.ExportDefinition(qname, script)
		d.ExportClass(class)
		if already {
			fmt.Println(green(fmt.Sprintf("# %s already defined on the chain; export ignored (first wins)", qname)))
		} else {
			fmt.Println(green(fmt.Sprintf("# exported %s", qname)))
		}
		return nil

	case "mem":
		return memCommand(fields[1:])
	}
	return fmt.Errorf("unknown command %q (try help)", fields[0])
}

func memCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mem <domain> len|grow|r8|r32|w8|w32 ...")
	}
	d, err := world.Get(args[0])
	if err != nil {
		return err
	}
	mem := d.Memory()

	num := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		return n, nil
	}

	switch args[1] {
	case "len":
		fmt.Println(blue(fmt.Sprintf("%d bytes", mem.Len())))
		return nil
	case "grow":
		if len(args) != 3 {
			return fmt.Errorf("usage: mem <domain> grow <n>")
		}
		n, err := num(args[2])
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("length must be non-negative")
		}
		mem.SetLength(n)
		fmt.Println(green(fmt.Sprintf("# memory now %d bytes", mem.Len())))
		return nil
	case "r8", "r32":
		if len(args) != 3 {
			return fmt.Errorf("usage: mem <domain> %s <off>", args[1])
		}
		off, err := num(args[2])
		if err != nil {
			return err
		}
		if args[1] == "r8" {
			v, err := mem.ReadU8(off)
			if err != nil {
				return err
			}
			fmt.Println(blue(fmt.Sprintf("%d (0x%02x)", v, v)))
		} else {
			v, err := mem.ReadU32(off)
			if err != nil {
				return err
			}
			fmt.Println(blue(fmt.Sprintf("%d (0x%08x)", v, v)))
		}
		return nil
	case "w8", "w32":
		if len(args) != 4 {
			return fmt.Errorf("usage: mem <domain> %s <off> <val>", args[1])
		}
		off, err := num(args[2])
		if err != nil {
			return err
		}
		val, err := num(args[3])
		if err != nil {
			return err
		}
		if args[1] == "w8" {
			return mem.WriteU8(off, uint8(val))
		}
		return mem.WriteU32(off, uint32(val))
	}
	return fmt.Errorf("unknown mem subcommand %q", args[1])
}
