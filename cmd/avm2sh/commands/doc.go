// Package commands implements the avm2sh CLI: an interactive inspection
// shell over an application-domain chain. A chain is described by a YAML
// "world" file (or a built-in default) and can be queried with one-shot
// subcommands or explored in a liner-backed REPL.
package commands
