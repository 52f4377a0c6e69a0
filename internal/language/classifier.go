// Package language maps file paths to language tags by extension.
package language

import (
	"path/filepath"
	"strings"

	"github.com/dshills/codechunk/pkg/types"
)

// defaultTable is the fixed extension-to-language mapping. The classifier
// copies it at construction so a running classifier never observes mutation.
var defaultTable = map[string]types.Language{
	".py":   types.LangPython,
	".pyi":  types.LangPython,
	".js":   types.LangJavaScript,
	".jsx":  types.LangJavaScript,
	".ts":   types.LangTypeScript,
	".tsx":  types.LangTypeScript,
	".json": types.LangJSON,
	".md":   types.LangMarkdown,
	".toml": types.LangTOML,
	".yml":  types.LangYAML,
	".yaml": types.LangYAML,
	".cfg":  types.LangINI,
	".ini":  types.LangINI,
	".txt":  types.LangText,
}

// Classifier maps file paths to language tags using a fixed extension
// table. Unknown or missing extensions classify as text.
type Classifier struct {
	table map[string]types.Language
}

// New creates a Classifier with the default extension table.
func New() *Classifier {
	return NewWithTable(defaultTable)
}

// NewWithTable creates a Classifier with a custom extension table.
// Keys must be lower-cased extensions including the leading dot.
// The table is copied; later mutation of the argument has no effect.
func NewWithTable(table map[string]types.Language) *Classifier {
	copied := make(map[string]types.Language, len(table))
	for ext, lang := range table {
		copied[ext] = lang
	}
	return &Classifier{table: copied}
}

// Classify returns the language tag for a path. The path need not exist
// on disk; only its extension is inspected. Pure function, no failure
// mode.
func (c *Classifier) Classify(path string) types.Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := c.table[ext]; ok {
		return lang
	}
	return types.LangText
}

// Extensions returns the extensions known to the classifier. Used as the
// default ingestion allow-list.
func (c *Classifier) Extensions() []string {
	exts := make([]string, 0, len(c.table))
	for ext := range c.table {
		exts = append(exts, ext)
	}
	return exts
}
