// name_test.go
package avm2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseQName(t *testing.T) {
	cases := []struct {
		text  string
		ns    string
		local string
	}{
		{"Foo", "", "Foo"},
		{"flash.utils::ByteArray", "flash.utils", "ByteArray"},
		{"__AS3__.vec::Vector", "__AS3__.vec", "Vector"},
		{"a::b::C", "a::b", "C"},
		{"::Foo", "", "Foo"},
		{"", "", ""},
	}
	for _, c := range cases {
		q := ParseQName(c.text)
		require.Equal(t, c.ns, q.NS.URI, "namespace of %q", c.text)
		require.Equal(t, c.local, q.Local, "local of %q", c.text)
		require.Equal(t, NSPackage, q.NS.Kind, "kind of %q", c.text)
	}
}

func Test_QName_String_RoundTrips(t *testing.T) {
	for _, text := range []string{"Foo", "flash.utils::ByteArray"} {
		require.Equal(t, text, ParseQName(text).String())
	}
}

func Test_DesugarVectorName(t *testing.T) {
	cases := []struct {
		text  string
		base  string
		param string
		ok    bool
	}{
		{"Vector.<int>", "__AS3__.vec::Vector", "int", true},
		{"__AS3__.vec::Vector.<int>", "__AS3__.vec::Vector", "int", true},
		{"Vector.<flash.utils::ByteArray>", "__AS3__.vec::Vector", "flash.utils::ByteArray", true},
		// No brackets: passes through untouched.
		{"Vector", "Vector", "", false},
		{"flash.utils::ByteArray", "flash.utils::ByteArray", "", false},
		// Missing the trailing '>': not desugared.
		{"Vector.<int", "Vector.<int", "", false},
		// Only one bracket level exists; the nested text is handed on as-is
		// and left to fail (or not) at qualified-name resolution.
		{"Vector.<Vector.<int>>", "__AS3__.vec::Vector", "Vector.<int>", true},
		// Prefix must match exactly from the start of the text.
		{"my.pkg::Vector.<int>", "my.pkg::Vector.<int>", "", false},
	}
	for _, c := range cases {
		base, param, ok := desugarVectorName(c.text)
		require.Equal(t, c.ok, ok, "desugar ok for %q", c.text)
		require.Equal(t, c.base, base, "base for %q", c.text)
		require.Equal(t, c.param, param, "param for %q", c.text)
	}
}

func Test_Multiname_Helpers(t *testing.T) {
	require.True(t, AnyName().IsAny())
	require.False(t, AnyName().HasLocalName())

	m := NewQName(PackageNamespace("flash.utils"), "ByteArray").Multiname()
	require.False(t, m.IsAny())
	require.True(t, m.HasLocalName())
	require.True(t, m.ContainsNamespace(PackageNamespace("flash.utils")))
	require.False(t, m.ContainsNamespace(PublicNamespace()))

	// Kind participates in namespace equality.
	private := Namespace{Kind: NSPrivate, URI: "flash.utils"}
	require.False(t, m.ContainsNamespace(private))
}
