// Package theme defines the named color palettes and the persisted theme
// preference.
package theme

import "github.com/charmbracelet/lipgloss"

// DefaultName is used when no preference is stored or the stored name is
// unknown.
const DefaultName = "default"

// Palette is the set of semantic colors every view renders with.
type Palette struct {
	Name string

	// Backgrounds, darkest to lightest (inverted for light themes).
	Base      lipgloss.Color
	Mantle    lipgloss.Color
	Surface   lipgloss.Color
	SurfaceHi lipgloss.Color

	// Foregrounds.
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color

	// Semantic accents.
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var palettes = []Palette{
	{
		Name: "default",
		Base: "#1d232a", Mantle: "#191e24", Surface: "#2a323c", SurfaceHi: "#3b4554",
		Text: "#ececec", Subtext: "#a6adbb", Overlay: "#6c7489",
		Accent: "#747fff", Focus: "#00cdb8", Success: "#00a96e", Warning: "#ffbe00", Error: "#ff5861",
	},
	{
		Name: "cupcake",
		Base: "#faf7f5", Mantle: "#efeae6", Surface: "#e7e2df", SurfaceHi: "#d8d3d0",
		Text: "#291334", Subtext: "#5d5656", Overlay: "#8a8483",
		Accent: "#65c3c8", Focus: "#ef9fbc", Success: "#2dd4bf", Warning: "#fbbd23", Error: "#f87272",
	},
	{
		Name: "retro",
		Base: "#ece3ca", Mantle: "#e4d8b4", Surface: "#dbca9a", SurfaceHi: "#c9b686",
		Text: "#282425", Subtext: "#4d4544", Overlay: "#7d7366",
		Accent: "#ef9995", Focus: "#a4cbb4", Success: "#16a34a", Warning: "#d97706", Error: "#dc2626",
	},
	{
		Name: "luxury",
		Base: "#09090b", Mantle: "#171618", Surface: "#1e1d20", SurfaceHi: "#2e2d2f",
		Text: "#e7e5e4", Subtext: "#a5a2a8", Overlay: "#6b6875",
		Accent: "#dca54c", Focus: "#f3cc30", Success: "#36d399", Warning: "#fbbd23", Error: "#f87272",
	},
	{
		Name: "sunset",
		Base: "#121c22", Mantle: "#0e171e", Surface: "#1b2b38", SurfaceHi: "#274357",
		Text: "#9fb9d0", Subtext: "#7a8a9b", Overlay: "#55657e",
		Accent: "#ff865b", Focus: "#fd6f9c", Success: "#2dd4bf", Warning: "#feb919", Error: "#ff6f70",
	},
	{
		Name: "night",
		Base: "#0f172a", Mantle: "#0b1120", Surface: "#1e293b", SurfaceHi: "#334155",
		Text: "#b3c5ef", Subtext: "#7f8ea3", Overlay: "#475569",
		Accent: "#38bdf8", Focus: "#818cf8", Success: "#36d399", Warning: "#fbbd23", Error: "#f87272",
	},
	{
		Name: "cyberpunk",
		Base: "#ffee00", Mantle: "#ebdb00", Surface: "#d9cb00", SurfaceHi: "#c7b900",
		Text: "#1a103d", Subtext: "#3d3356", Overlay: "#5c527a",
		Accent: "#ff7598", Focus: "#75d1f0", Success: "#00b45a", Warning: "#b45309", Error: "#dc2626",
	},
	{
		Name: "valentine",
		Base: "#f0d6e8", Mantle: "#e8c8dd", Surface: "#e0b9d2", SurfaceHi: "#d2a2c0",
		Text: "#632c3b", Subtext: "#8a4a5c", Overlay: "#a86880",
		Accent: "#e96d7b", Focus: "#a991f7", Success: "#2dd4bf", Warning: "#f59e0b", Error: "#dd2e44",
	},
	{
		Name: "aqua",
		Base: "#345da7", Mantle: "#2b4e91", Surface: "#3e6ab8", SurfaceHi: "#4d79c7",
		Text: "#d9f4ff", Subtext: "#a5cbe8", Overlay: "#7fa8cf",
		Accent: "#09ecf3", Focus: "#966fb3", Success: "#2bd4bd", Warning: "#fbbd23", Error: "#f87272",
	},
	{
		Name: "winter",
		Base: "#ffffff", Mantle: "#f2f7ff", Surface: "#e3e9f4", SurfaceHi: "#cbd5e8",
		Text: "#394e6a", Subtext: "#5c6f8a", Overlay: "#8795ab",
		Accent: "#047aff", Focus: "#463aa2", Success: "#16a34a", Warning: "#ea580c", Error: "#dc2626",
	},
	{
		Name: "dracula",
		Base: "#282a36", Mantle: "#21222c", Surface: "#343746", SurfaceHi: "#44475a",
		Text: "#f8f8f2", Subtext: "#b8b9c5", Overlay: "#6272a4",
		Accent: "#ff79c6", Focus: "#bd93f9", Success: "#50fa7b", Warning: "#f1fa8c", Error: "#ff5555",
	},
	{
		Name: "synthwave",
		Base: "#2d1b69", Mantle: "#241556", Surface: "#3a2a7a", SurfaceHi: "#4a3a8f",
		Text: "#f9f7fd", Subtext: "#c3b9e0", Overlay: "#8a7fb8",
		Accent: "#e779c1", Focus: "#58c7f3", Success: "#71ead2", Warning: "#f3cc30", Error: "#e24056",
	},
	{
		Name: "halloween",
		Base: "#212121", Mantle: "#1a1a1a", Surface: "#2e2e2e", SurfaceHi: "#3d3d3d",
		Text: "#d6d6d6", Subtext: "#a3a3a3", Overlay: "#707070",
		Accent: "#f28c18", Focus: "#6d3a9c", Success: "#51a800", Warning: "#e08700", Error: "#f87272",
	},
	{
		Name: "coffee",
		Base: "#20161f", Mantle: "#1a121a", Surface: "#2e222c", SurfaceHi: "#3e303a",
		Text: "#c59f60", Subtext: "#a18f6a", Overlay: "#756a5a",
		Accent: "#db924b", Focus: "#1fb2a6", Success: "#9db787", Warning: "#ffd25f", Error: "#fc9581",
	},
}

// Names returns every palette name in display order, default first.
func Names() []string {
	out := make([]string, len(palettes))
	for i, p := range palettes {
		out[i] = p.Name
	}
	return out
}

// ByName returns the palette with the given name.
func ByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Default returns the default palette.
func Default() Palette {
	p, _ := ByName(DefaultName)
	return p
}
