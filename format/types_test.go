package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{ZigZag, "ZigZag"},
		{Float, "Float"},
		{Simple, "Simple"},
		{Ref, "Ref"},
		{Bytes, "Bytes"},
		{UTF8, "UTF8"},
		{HexString, "HexString"},
		{List, "List"},
		{Map, "Map"},
		{Array, "Array"},
		{Trie, "Trie"},
		{Scope, "Scope"},
		{Type(5), "Unknown"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, c.typ.String())
	}
}

func TestType_IsReserved(t *testing.T) {
	for code := 4; code <= 7; code++ {
		require.True(t, Type(code).IsReserved(), "code %d should be reserved", code)
	}
	require.False(t, ZigZag.IsReserved())
	require.False(t, List.IsReserved())
}

func TestType_IsContainer(t *testing.T) {
	containers := []Type{List, Map, Array, Trie, Scope}
	for _, typ := range containers {
		require.True(t, typ.IsContainer(), "%s should be a container", typ)
	}

	leaves := []Type{ZigZag, Float, Simple, Ref, Bytes, UTF8, HexString}
	for _, typ := range leaves {
		require.False(t, typ.IsContainer(), "%s should not be a container", typ)
	}
}

func TestSubtype_String(t *testing.T) {
	require.Equal(t, "False", False.String())
	require.Equal(t, "True", True.String())
	require.Equal(t, "Null", Null.String())
	require.Equal(t, "Unknown", Subtype(99).String())
}
