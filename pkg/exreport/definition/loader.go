package definition

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "exreport"

// Extensions are the accepted definition file extensions.
var Extensions = []string{".yaml", ".yml"}

//go:embed samples/*.yaml
var samples embed.FS

// Source describes where a discoverable definition lives.
type Source struct {
	Name string
	// Path is the file path, or "builtin:<name>" for bundled samples.
	Path string
}

// ReportsDir returns the per-user definitions directory.
// On Linux: ~/.config/exreport/reports
func ReportsDir() string {
	return filepath.Join(xdg.ConfigHome, AppName, "reports")
}

// SearchDirs returns the directories searched for definitions by name, in
// priority order.
func SearchDirs() []string {
	return []string{".", ReportsDir()}
}

// Parse decodes a definition and applies defaults. Unknown fields are
// rejected. The result is not validated.
func Parse(data []byte) (*Report, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Report
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &r, nil
}

// Load reads, decodes and validates the definition at path.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided definition path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, path)
		}
		return nil, err
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.applyDefaults(trimExt(filepath.Base(path)))
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadSample loads a bundled sample definition by name.
func LoadSample(name string) (*Report, error) {
	for _, ext := range Extensions {
		data, err := samples.ReadFile("samples/" + name + ext)
		if err != nil {
			continue
		}
		r, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", name, err)
		}
		r.applyDefaults(name)
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%w: builtin:%s", ErrDefinitionNotFound, name)
}

// Find resolves a definition argument to a file path:
//  1. arg itself, if it names an existing file
//  2. <dir>/<arg>.yaml or .yml for each of SearchDirs
func Find(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}
	if strings.ContainsRune(arg, os.PathSeparator) || filepath.Ext(arg) != "" {
		return "", fmt.Errorf("%w: %s", ErrDefinitionNotFound, arg)
	}

	for _, dir := range SearchDirs() {
		for _, ext := range Extensions {
			candidate := filepath.Join(dir, arg+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrDefinitionNotFound, arg)
}

// Resolve finds and loads a definition by path or name, falling back to the
// bundled samples.
func Resolve(arg string) (*Report, error) {
	path, err := Find(arg)
	if err == nil {
		return Load(path)
	}
	if !errors.Is(err, ErrDefinitionNotFound) {
		return nil, err
	}
	if name, ok := strings.CutPrefix(arg, "builtin:"); ok {
		return LoadSample(name)
	}
	if slices.Contains(Samples(), arg) {
		return LoadSample(arg)
	}
	return nil, err
}

// Samples returns the names of the bundled sample definitions.
func Samples() []string {
	entries, err := fs.ReadDir(samples, "samples")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, trimExt(e.Name()))
	}
	return names
}

// List returns every definition discoverable by name: files in SearchDirs
// first, then bundled samples not shadowed by a file.
func List() ([]Source, error) {
	var out []Source
	seen := make(map[string]bool)

	for _, dir := range SearchDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !slices.Contains(Extensions, filepath.Ext(e.Name())) {
				continue
			}
			name := trimExt(e.Name())
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, Source{Name: name, Path: filepath.Join(dir, e.Name())})
		}
	}

	for _, name := range Samples() {
		if !seen[name] {
			seen[name] = true
			out = append(out, Source{Name: name, Path: "builtin:" + name})
		}
	}
	return out, nil
}

func (r *Report) applyDefaults(name string) {
	if r.Name == "" {
		r.Name = name
	}
	if r.Output == "" {
		r.Output = r.Name + ".xlsx"
	}
}

func trimExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
