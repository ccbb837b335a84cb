package prompts

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/litetravel/notescope/pkg/domain"
)

// maxContentChars limits how much of a note's body goes into the prompt
const maxContentChars = 2000

// Template is a named pair of system instruction and fillable user prompt.
// UserTemplate uses text/template placeholders (Title, Content, Tags,
// Location, Likes, Collects, Comments).
type Template struct {
	Name         string
	SystemPrompt string
	UserTemplate string
	OutputFormat string // currently always "json"
}

// compiledTemplate keeps the parsed user template next to its definition
type compiledTemplate struct {
	Template
	tmpl *template.Template
}

// Manager holds named prompt templates and renders them with note data.
// Builtin templates are registered at construction; RegisterTemplate upserts,
// last write wins per name. Registration during active batch processing is
// not supported, register everything up front.
type Manager struct {
	mu        sync.RWMutex
	templates map[string]compiledTemplate
}

// NewManager creates a manager with the builtin travel, dining and hotel templates
func NewManager() *Manager {
	m := &Manager{templates: make(map[string]compiledTemplate)}
	for _, t := range builtinTemplates {
		if err := m.RegisterTemplate(t); err != nil {
			// builtins are static, a parse failure is a programming error
			panic(fmt.Sprintf("register builtin template %s: %v", t.Name, err))
		}
	}
	return m
}

// RegisterTemplate compiles and upserts a template into the registry
func (m *Manager) RegisterTemplate(t Template) error {
	tmpl, err := template.New(t.Name).Option("missingkey=error").Parse(t.UserTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", t.Name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.Name] = compiledTemplate{Template: t, tmpl: tmpl}
	return nil
}

// GetTemplate returns a registered template by name
func (m *Manager) GetTemplate(name string) (Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ct, ok := m.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("template %q not found, available: %s", name, strings.Join(m.namesLocked(), ", "))
	}
	return ct.Template, nil
}

// ListTemplates returns all registered template names, sorted
func (m *Manager) ListTemplates() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.namesLocked()
}

func (m *Manager) namesLocked() []string {
	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectTemplate picks a template name for the given content category.
// Unknown categories fall back to the generic travel template.
func (m *Manager) SelectTemplate(contentType domain.ContentType) string {
	switch contentType {
	case domain.ContentDining:
		return "dining_analysis"
	case domain.ContentHotel:
		return "hotel_analysis"
	default:
		return "travel_analysis"
	}
}

// BuildPrompt renders the named template with the note's data and returns the
// (system, user) instruction pair
func (m *Manager) BuildPrompt(name string, note domain.Note) (systemPrompt, userPrompt string, err error) {
	return m.BuildPromptExtra(name, note, nil)
}

// BuildPromptExtra renders like BuildPrompt with additional placeholder
// values merged in, overriding the note-derived ones on name collision.
// A placeholder the data doesn't cover fails the render, there are no
// silent partial prompts.
func (m *Manager) BuildPromptExtra(name string, note domain.Note, extra map[string]any) (systemPrompt, userPrompt string, err error) {
	m.mu.RLock()
	ct, ok := m.templates[name]
	names := m.namesLocked()
	m.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found, available: %s", name, strings.Join(names, ", "))
	}

	tags := "无"
	if len(note.Tags) > 0 {
		tags = strings.Join(note.Tags, ", ")
	}

	location := note.Location
	if location == "" {
		location = note.City
	}
	if location == "" {
		location = "未知"
	}

	data := map[string]any{
		"Title":    note.Title,
		"Content":  truncateRunes(note.Content, maxContentChars),
		"Tags":     tags,
		"Location": location,
		"Likes":    note.Likes,
		"Collects": note.Collects,
		"Comments": note.Comments,
	}
	for k, v := range extra {
		data[k] = v
	}

	var sb strings.Builder
	if err := ct.tmpl.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render template %s: %w", name, err)
	}

	return ct.SystemPrompt, sb.String(), nil
}

// truncateRunes cuts a string to at most n characters, not bytes
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
