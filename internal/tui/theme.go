package tui

import (
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       models.ThemeName
	Base       lipgloss.Style
	Header     lipgloss.Style
	Text       lipgloss.Style
	Work       lipgloss.Style
	Break      lipgloss.Style
	Bar        lipgloss.Color
	Input      lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
	Menu       lipgloss.Style
	Toast      lipgloss.Style
	ToastError lipgloss.Style
	Priority   map[models.Priority]lipgloss.Style
}

const (
	tomato = lipgloss.Color("#FF6347")
	green  = lipgloss.Color("#4CAF50")
)

var Themes = map[models.ThemeName]Theme{
	models.ThemeLight: {
		Name:       models.ThemeLight,
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Work:       lipgloss.NewStyle().Foreground(tomato).Bold(true),
		Break:      lipgloss.NewStyle().Foreground(green).Bold(true),
		Bar:        tomato,
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(tomato).Padding(0, 1).Width(50),
		Focused:    lipgloss.NewStyle().Foreground(tomato).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Highlight:  lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("232")),
		Menu:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Toast:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
		ToastError: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Padding(0, 1),
		Priority: map[models.Priority]lipgloss.Style{
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		},
	},
	models.ThemeDark: {
		Name:       models.ThemeDark,
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Work:       lipgloss.NewStyle().Foreground(tomato).Bold(true),
		Break:      lipgloss.NewStyle().Foreground(green).Bold(true),
		Bar:        tomato,
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(tomato).Padding(0, 1).Width(50),
		Focused:    lipgloss.NewStyle().Foreground(tomato).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Highlight:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255")),
		Menu:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Toast:      lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("252")).Padding(0, 1),
		ToastError: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("124")).Padding(0, 1),
		Priority: map[models.Priority]lipgloss.Style{
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		},
	},
}

// ThemeFor returns the named theme, light when unknown.
func ThemeFor(name models.ThemeName) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[models.ThemeLight]
}

func (t Theme) PhaseStyle(isBreak bool) lipgloss.Style {
	if isBreak {
		return t.Break
	}
	return t.Work
}
