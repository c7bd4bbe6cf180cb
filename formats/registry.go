package formats

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Definition describes a registered format: its display name, the
// extensions it claims and a constructor for new sessions.
type Definition struct {
	Name       string
	Extensions []string
	New        func(Source) (Format, error)
}

var registry = []Definition{
	{
		Name:       "XML",
		Extensions: []string{"xml"},
		New:        func(src Source) (Format, error) { return NewXML(src) },
	},
	{
		Name:       "JSON",
		Extensions: []string{"json"},
		New:        func(src Source) (Format, error) { return NewJSON(src) },
	},
	{
		Name:       "YAML",
		Extensions: []string{"yaml", "yml"},
		New:        func(src Source) (Format, error) { return NewYAML(src) },
	},
}

// Formats lists the registered formats in registration order.
func Formats() []Definition {
	res := make([]Definition, len(registry))
	copy(res, registry)
	return res
}

// FileType is one entry for a file-picker's type filter.
type FileType struct {
	Label   string
	Pattern string
}

// FileTypes returns (display name, "*.ext1 *.ext2") pairs for every
// registered format.
func FileTypes() []FileType {
	res := make([]FileType, 0, len(registry))
	for _, def := range registry {
		patterns := make([]string, len(def.Extensions))
		for i, ext := range def.Extensions {
			patterns[i] = "*." + ext
		}
		res = append(res, FileType{Label: def.Name, Pattern: strings.Join(patterns, " ")})
	}
	return res
}

// Infer returns the registered format claiming the extension of path. The
// match is case-insensitive with the leading dot stripped.
func Infer(path string) (Definition, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, def := range registry {
		for _, e := range def.Extensions {
			if e == ext {
				return def, nil
			}
		}
	}
	return Definition{}, fmt.Errorf("%w for extension %q", ErrNoFormat, ext)
}
