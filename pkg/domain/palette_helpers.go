package domain

import (
	"sort"
	"strings"
)

// LookupPalette はパレット名から配色を引き当てます。
// 大文字小文字は区別せず、未知の名前は blue にフォールバックします。
func LookupPalette(name string) Palette {
	if p, ok := predefinedPalettes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return predefinedPalettes[DefaultPaletteName]
}

// IsKnownPalette は定義済みのパレット名かどうかを返します。
func IsKnownPalette(name string) bool {
	_, ok := predefinedPalettes[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// PaletteNames は定義済みパレット名をソートして返します。
func PaletteNames() []string {
	names := make([]string, 0, len(predefinedPalettes))
	for name := range predefinedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
