package types

// Language identifies the language tag derived from a file's extension
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJSON       Language = "json"
	LangMarkdown   Language = "markdown"
	LangTOML       Language = "toml"
	LangYAML       Language = "yaml"
	LangINI        Language = "ini"
	LangText       Language = "text"
)

// HeuristicFamily selects the boundary-detection rule set for a language
type HeuristicFamily int

const (
	// FamilyNone applies no heuristic; files are split into fixed windows
	FamilyNone HeuristicFamily = iota
	// FamilyIndent detects def/class starts with decorator walk-back
	FamilyIndent
	// FamilyBrace detects function/class/const/let/var starts
	FamilyBrace
)

// Family returns the heuristic family used to detect boundaries for the
// language. Only python uses the indent family; the javascript/typescript
// pair uses the brace family. Everything else gets fixed-size windows.
func (l Language) Family() HeuristicFamily {
	switch l {
	case LangPython:
		return FamilyIndent
	case LangJavaScript, LangTypeScript:
		return FamilyBrace
	default:
		return FamilyNone
	}
}

// ChunkType returns the chunk type emitted for content in this language.
// The prose set is exactly {markdown, text, json, toml, yaml}; ini files
// are typed code, preserving the inherited heuristic behavior.
func (l Language) ChunkType() ChunkType {
	switch l {
	case LangMarkdown, LangText, LangJSON, LangTOML, LangYAML:
		return ChunkProse
	default:
		return ChunkCode
	}
}
