package chart

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	description lipgloss.Style
	badge       lipgloss.Style
	axisLabel   lipgloss.Style
	seriesName  lipgloss.Style
	value       lipgloss.Style
	barBracket  lipgloss.Style
	barFill     lipgloss.Style
	barFillAlt  lipgloss.Style
	barEmpty    lipgloss.Style
	kpiKey      lipgloss.Style
	section     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		axisLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		seriesName:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barFillAlt:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		barEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		kpiKey:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:     lipgloss.NewStyle().MarginTop(1),
	}
}
