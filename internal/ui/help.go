// ABOUTME: Custom help template for Cobra commands with lipgloss styling
// ABOUTME: Provides consistent, colorful help output across all commands
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Help section styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	helpHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)

	helpCommandStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// SetupHelpTemplate configures custom help templates for the root command
// and all its subcommands
func SetupHelpTemplate(cmd *cobra.Command) {
	cmd.SetUsageTemplate(helpTemplate)
	cmd.SetHelpTemplate(helpTemplate)

	cobra.AddTemplateFunc("styleTitle", styleTitle)
	cobra.AddTemplateFunc("styleHeading", styleHeading)
	cobra.AddTemplateFunc("styleCommand", styleCommand)
	cobra.AddTemplateFunc("styleExample", styleExample)
}

func styleTitle(s string) string {
	return helpTitleStyle.Render(s)
}

func styleHeading(s string) string {
	return helpHeadingStyle.Render(s)
}

func styleCommand(s string) string {
	return helpCommandStyle.Render(s)
}

func styleExample(s string) string {
	// Comment lines get muted, command lines get the command color
	lines := strings.Split(s, "\n")
	var styled []string
	for _, line := range lines {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "#"):
			styled = append(styled, helpDescStyle.Render(line))
		case strings.TrimSpace(line) != "":
			styled = append(styled, helpCommandStyle.Render(line))
		default:
			styled = append(styled, line)
		}
	}
	return strings.Join(styled, "\n")
}

const helpTemplate = `{{if .Long}}{{.Long}}{{else}}{{styleTitle .Short}}{{end}}

{{styleHeading "Usage:"}}
  {{styleCommand .UseLine}}{{if .HasAvailableSubCommands}}
  {{styleCommand .CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{styleHeading "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{styleHeading "Examples:"}}
{{styleExample .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{styleHeading "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{styleCommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{styleHeading "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{styleHeading "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{styleCommand (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`
