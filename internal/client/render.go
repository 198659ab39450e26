// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/twconf/internal/app"
	"github.com/MKhiriev/twconf/internal/buildconfig"
	"github.com/MKhiriev/twconf/internal/workers"
	"github.com/MKhiriev/twconf/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const uiDivider = "──────────────────────────────────────────"

func renderPage(title, data, help string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
	} else {
		b.WriteString("-")
	}

	if strings.TrimSpace(help) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(help))
	}

	return boxStyle.Render(b.String())
}

func field(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + " " + valueOrDash(value)
}

func renderReport(source string, report models.ValidationReport) string {
	cfg := report.Config
	lines := []string{
		field("file", source),
		field("mode", string(cfg.Mode)),
		field("dark mode", string(cfg.DarkModeStrategy)),
		field("content", fmt.Sprintf("%d pattern(s)", len(cfg.ContentPaths))),
	}
	for _, p := range cfg.ContentPaths {
		lines = append(lines, "  "+p)
	}

	lines = append(lines, field("plugins", fmt.Sprintf("%d", len(report.Plugins))))
	for _, p := range report.Plugins {
		lines = append(lines, "  "+pluginLine(p))
	}

	if names := sortedKeys(cfg.PluginOptions); len(names) > 0 {
		lines = append(lines, field("options", strings.Join(names, ", ")))
	}
	if names := sortedKeys(cfg.ThemeExtensions); len(names) > 0 {
		lines = append(lines, field("theme", strings.Join(names, ", ")))
	}
	lines = append(lines, field("fingerprint", report.Fingerprint))

	return renderPage(okStyle.Render(app.MsgConfigIsValid), strings.Join(lines, "\n"), "")
}

// RenderError renders a failed command. Loader errors show their kind and
// the offending field.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	lines := []string{field("kind", errorKind(err))}
	if name := buildconfig.FieldOf(err); name != "" {
		lines = append(lines, field("field", name))
	}
	lines = append(lines, field("error", err.Error()))

	return renderPage(errorStyle.Render(app.MsgConfigRejected), strings.Join(lines, "\n"), "")
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, buildconfig.ErrConfigParse), errors.Is(err, buildconfig.ErrUnsupportedFormat):
		return string(models.ErrorKindParse)
	case errors.Is(err, buildconfig.ErrConfigValidation):
		return string(models.ErrorKindValidation)
	case errors.Is(err, buildconfig.ErrPluginResolution):
		return string(models.ErrorKindPluginResolution)
	default:
		return string(models.ErrorKindInternal)
	}
}

func renderPlugins(list []models.Plugin) string {
	if len(list) == 0 {
		return renderPage(titleStyle.Render("plugins"), app.MsgNoPlugins, "")
	}

	lines := make([]string, 0, len(list))
	for _, p := range list {
		lines = append(lines, pluginLine(p))
	}
	return renderPage(titleStyle.Render("plugins"), strings.Join(lines, "\n"), fmt.Sprintf("%d plugin(s)", len(list)))
}

func pluginLine(p models.Plugin) string {
	line := fmt.Sprintf("%-18s %s", p.Name, p.Package)
	if p.Version != "" {
		line += "@" + p.Version
	}
	return line + " " + labelStyle.Render("("+string(p.Source)+")")
}

func renderContent(patterns, files []string) string {
	title := titleStyle.Render("content files")
	help := fmt.Sprintf("%d file(s) from %d pattern(s)", len(files), len(patterns))
	if len(files) == 0 {
		return renderPage(title, app.MsgNoContentFiles, help)
	}
	return renderPage(title, strings.Join(files, "\n"), help)
}

func renderWatchResult(result workers.WatchResult) string {
	stamp := helpStyle.Render(result.LoadedAt.Format("15:04:05"))
	if result.Err != nil {
		return stamp + "\n" + RenderError(result.Err)
	}
	return stamp + "\n" + renderReport(result.Path, result.Report)
}

func renderBuildInfo(info models.AppBuildInfo, appVersion, serverVersion string) string {
	lines := []string{
		field("app", "twconf"),
		field("version", valueOrNA(appVersion)),
		field("build", valueOrNA(info.BuildVersion())),
		field("date", valueOrNA(info.BuildDate())),
		field("commit", valueOrNA(info.BuildCommit())),
	}
	if serverVersion != "" {
		lines = append(lines, field("server", serverVersion))
	}
	return renderPage(titleStyle.Render("about"), strings.Join(lines, "\n"), "")
}

// Usage renders the command list.
func Usage() string {
	lines := []string{
		"twconf <command> [flags] [file]",
		"",
	}
	for _, name := range Commands() {
		lines = append(lines, "  "+name)
	}
	return renderPage(titleStyle.Render("usage"), strings.Join(lines, "\n"), "flags: -a -c -env-file -log-level -root -modules -strict -remote -request-timeout -cache-size -watch-interval -format")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
