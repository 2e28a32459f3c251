// Package category owns the static extension-to-category table used to decide
// where a file belongs.
//
// The table is built once at startup and never mutated; classification is a
// total function over extension strings with "Other" as the fallback for
// anything the table does not know.
package category

import (
	"sort"
	"strings"
)

// Fallback is the category assigned to extensions no table entry covers. It
// is never a table key but always has a destination folder.
const Fallback = "Other"

// Table maps category names to their extension sets and keeps a precomputed
// inverse index for O(1) classification.
type Table struct {
	categories map[string][]string
	byExt      map[string]string
	names      []string
}

var defaultCategories = map[string][]string{
	"Images":      {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"},
	"Documents":   {".pdf", ".docx", ".doc", ".txt", ".xlsx", ".xls", ".pptx", ".ppt", ".odt", ".rtf", ".md"},
	"Audio":       {".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a"},
	"Video":       {".mp4", ".mov", ".avi", ".mkv", ".flv", ".wmv", ".webm"},
	"Archives":    {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".iso"},
	"Executables": {".exe", ".msi", ".dmg", ".app", ".bat", ".sh"},
	"Code":        {".py", ".js", ".html", ".css", ".java", ".c", ".cpp", ".h", ".cs", ".go", ".rb", ".php", ".json", ".xml", ".yml", ".yaml"},
}

// Default returns the built-in table.
func Default() Table {
	return build(defaultCategories)
}

func build(categories map[string][]string) Table {
	byExt := make(map[string]string)
	copied := make(map[string][]string, len(categories))
	names := make([]string, 0, len(categories)+1)
	for name, exts := range categories {
		sorted := make([]string, len(exts))
		copy(sorted, exts)
		sort.Strings(sorted)
		copied[name] = sorted
		names = append(names, name)
		for _, ext := range exts {
			byExt[strings.ToLower(ext)] = name
		}
	}
	names = append(names, Fallback)
	sort.Strings(names)
	return Table{categories: copied, byExt: byExt, names: names}
}

// Classify maps a file extension (leading dot included, possibly empty) to a
// category name. Matching is case-insensitive; unknown extensions fall back
// to Other.
func (t Table) Classify(ext string) string {
	if name, ok := t.byExt[strings.ToLower(ext)]; ok {
		return name
	}
	return Fallback
}

// Names returns every category name including the fallback, sorted
// alphabetically. The returned slice is a copy.
func (t Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Extensions returns the sorted extension list for a category, or nil for
// unknown categories and the fallback.
func (t Table) Extensions(name string) []string {
	exts, ok := t.categories[name]
	if !ok {
		return nil
	}
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// Contains reports whether name is a table key or the fallback.
func (t Table) Contains(name string) bool {
	if name == Fallback {
		return true
	}
	_, ok := t.categories[name]
	return ok
}
