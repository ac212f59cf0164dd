package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source records where a config key was last set.
type Source struct {
	File   string
	Line   int
	Column int
}

func (s Source) String() string {
	if s.File == "" {
		return "default"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// LoadResult is a loaded config plus the files it came from.
type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML path -> last writer
	Files   []string          // loaded files, in load order
}

// DefaultConfigPath returns ~/.config/termstack/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "termstack", "config.yaml"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	res, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadFromPath loads path over DefaultConfig. A missing file yields the
// defaults. Files listed under "include" are applied before the file itself.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	res := &LoadResult{
		Config:  cfg,
		Sources: map[string]Source{},
	}

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := loadInto(path, cfg, res, nil); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, res.Sources)
	}
	return res, nil
}

// fileDoc is the on-disk shape: Config plus the include directive.
type fileDoc struct {
	Include includeList `yaml:"include,omitempty"`
	Config  `yaml:",inline"`
}

type includeList []string

func (l *includeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = includeList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: include must be a string or a list of strings", node.Line)
}

func loadInto(path string, cfg *Config, res *LoadResult, stack []string) error {
	canon, err := canonicalPath(path)
	if err != nil {
		return err
	}
	for _, existing := range stack {
		if existing == canon {
			return fmt.Errorf("include cycle detected: %s -> %s", strings.Join(stack, " -> "), canon)
		}
	}

	data, err := os.ReadFile(canon)
	if err != nil {
		return fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: failed to parse yaml: %w", canon, err)
	}

	// Peek includes first so they apply underneath this file.
	var head struct {
		Include includeList `yaml:"include,omitempty"`
	}
	if err := doc.Decode(&head); err != nil && !isEmptyDoc(&doc) {
		return fmt.Errorf("%s: %w", canon, err)
	}
	for _, inc := range head.Include {
		paths, err := expandInclude(canon, inc)
		if err != nil {
			return fmt.Errorf("%s: include %q: %w", canon, inc, err)
		}
		for _, incPath := range paths {
			if err := loadInto(incPath, cfg, res, append(stack, canon)); err != nil {
				return err
			}
		}
	}

	file := fileDoc{Config: *cfg}
	if err := decodeStrictYAML(data, &file); err != nil {
		return fmt.Errorf("%s: %w", canon, err)
	}
	*cfg = file.Config

	for p, src := range collectSources(&doc, canon) {
		res.Sources[p] = src
	}
	res.Files = append(res.Files, canon)
	return nil
}

func isEmptyDoc(doc *yaml.Node) bool {
	return doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0)
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return real, nil
}

func expandInclude(baseFile string, include string) ([]string, error) {
	path, err := resolvePathRelativeToFile(baseFile, include)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(ent.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		files = append(files, filepath.Join(path, ent.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func resolvePathRelativeToFile(baseFile string, include string) (string, error) {
	if include == "" {
		return "", fmt.Errorf("path is empty")
	}
	if include == "~" || strings.HasPrefix(include, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		include = filepath.Join(home, strings.TrimPrefix(include, "~"))
	}
	if filepath.IsAbs(include) {
		return include, nil
	}
	return filepath.Join(filepath.Dir(baseFile), include), nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	collectSourcesRec(node, file, "", out)
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		out[path] = Source{File: file, Line: val.Line, Column: val.Column}
		collectSourcesRec(val, file, path, out)
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path == "" {
		return err
	}
	// Walk up the path until a key with a recorded position is found.
	for path := verr.Path; path != ""; {
		if src, ok := sources[path]; ok {
			verr.Source = src
			return verr
		}
		idx := strings.LastIndex(path, ".")
		if idx < 0 {
			break
		}
		path = path[:idx]
	}
	return verr
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
