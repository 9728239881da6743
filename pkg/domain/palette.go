package domain

import "fmt"

// DefaultPaletteName は未知のパレット名が指定されたときに使うパレットです。
const DefaultPaletteName = "blue"

// Palette はセッション内の全スライドに一様に適用される4色の配色です。
type Palette struct {
	Name              string `json:"name"`
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primary_foreground"`
	Secondary         string `json:"secondary"`
	Accent            string `json:"accent"`
}

// PalettesMap はパレット名をキーとした検索用マップです。
type PalettesMap map[string]Palette

// predefinedPalettes は定義済みの5つのパレットです。
var predefinedPalettes = PalettesMap{
	"blue": {
		Name:              "blue",
		Primary:           "#1791e8",
		PrimaryForeground: "#ffffff",
		Secondary:         "#f5f5f5",
		Accent:            "#e3f2fd",
	},
	"green": {
		Name:              "green",
		Primary:           "#4caf50",
		PrimaryForeground: "#ffffff",
		Secondary:         "#f5f5f5",
		Accent:            "#e8f5e8",
	},
	"purple": {
		Name:              "purple",
		Primary:           "#9c27b0",
		PrimaryForeground: "#ffffff",
		Secondary:         "#f5f5f5",
		Accent:            "#f3e5f5",
	},
	"orange": {
		Name:              "orange",
		Primary:           "#ff9800",
		PrimaryForeground: "#ffffff",
		Secondary:         "#f5f5f5",
		Accent:            "#fff3e0",
	},
	"red": {
		Name:              "red",
		Primary:           "#f44336",
		PrimaryForeground: "#ffffff",
		Secondary:         "#f5f5f5",
		Accent:            "#ffebee",
	},
}

// String はパレットの情報を文字列で返します。
func (p Palette) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Primary)
}
