// world_test.go
package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	avm2 "github.com/nickjhughes/ruffle"
)

func writeWorld(t *testing.T, src string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(p, []byte(src), 0o644))
	return p
}

func Test_LoadWorld_Default(t *testing.T) {
	w, err := LoadWorld("")
	require.NoError(t, err)
	require.Equal(t, []string{"playerglobals", "movie"}, w.Order)

	movie, err := w.Get("movie")
	require.NoError(t, err)
	require.Equal(t, avm2.DefaultDomainMemoryLength, movie.Memory().Len())

	// Core classes resolve from the movie domain through the chain.
	v, err := movie.GetDefinedValueHandlingVector("Vector.<int>")
	require.NoError(t, err)
	class, ok := v.(*avm2.Class)
	require.True(t, ok)
	require.Equal(t, "__AS3__.vec::Vector.<int>", class.Name().String())
}

func Test_LoadWorld_File(t *testing.T) {
	p := writeWorld(t, `
domains:
  - name: root
    definitions:
      - name: "__AS3__.vec::Vector"
        generic: true
      - name: Foo
  - name: child
    parent: root
    memory: 2048
    definitions:
      - name: Foo
      - name: Bar
`)
	w, err := LoadWorld(p)
	require.NoError(t, err)

	child, err := w.Get("child")
	require.NoError(t, err)
	require.Equal(t, 2048, child.Memory().Len())

	// Foo in root wins over child's shadow export (first definition wins),
	// so child's local table only gained Bar.
	names := child.DefinedNames()
	require.Len(t, names, 1)
	require.Equal(t, "Bar", names[0].String())

	// Empty name defaults to the leafmost domain.
	leaf, err := w.Get("")
	require.NoError(t, err)
	require.Same(t, child, leaf)
}

func Test_LoadWorld_Errors(t *testing.T) {
	_, err := LoadWorld(writeWorld(t, `
domains:
  - name: child
    parent: missing
`))
	require.ErrorContains(t, err, "parent")

	_, err = LoadWorld(writeWorld(t, `
domains:
  - name: a
  - name: a
`))
	require.ErrorContains(t, err, "duplicate")

	_, err = LoadWorld(writeWorld(t, `domains: ["not a map"]`))
	require.Error(t, err)
}
