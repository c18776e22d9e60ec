package template

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/rosctl/internal/fileutil"
)

const formatVersionKey = "ROSTemplateFormatVersion"

// File is a template document together with the path it was read from.
type File struct {
	// Path is the absolute path of the template file.
	Path string

	// Document is the normalized template content.
	Document *Document
}

// Load reads the template in dir, trying template.yml before template.yaml.
// found is false, with a nil error, when neither file exists.
func Load(dir string) (file *File, found bool, err error) {
	for _, name := range FileNames {
		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, false, fmt.Errorf("resolve template path: %w", err)
		}

		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, false, fmt.Errorf("stat template: %w", err)
		}

		doc, err := ReadFile(path)
		if err != nil {
			return nil, false, err
		}
		return &File{Path: path, Document: doc}, true, nil
	}

	return nil, false, nil
}

// ReadFile reads and normalizes the template at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes template content and normalizes it. Empty content, including
// a lone false, zero or empty string, yields DefaultDocument; content without
// a format version key is malformed.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	body := documentBody(&root)
	if body == nil {
		return DefaultDocument(), nil
	}

	if body.Kind != yaml.MappingNode || !hasKey(body, formatVersionKey) {
		return nil, ErrMalformedTemplate
	}

	var doc Document
	if err := body.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	doc.Normalize()
	return &doc, nil
}

// Normalize fills in the defaults without overriding explicit values.
func (d *Document) Normalize() {
	if d.Resources == nil {
		d.Resources = make(map[string]Resource)
	}
	if d.FormatVersion == "" {
		d.FormatVersion = DefaultFormatVersion
	}
	d.Transform = d.Transform.WithDefault()
}

// Save writes the document to the file it was loaded from.
func (f *File) Save() error {
	return Save(f.Path, f.Document)
}

// Save encodes doc as YAML and overwrites path.
func Save(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// Marshal encodes doc as YAML with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	return buf.Bytes(), nil
}

// documentBody returns the top-level node of a parsed document, or nil when
// the document is empty or a blank scalar.
func documentBody(root *yaml.Node) *yaml.Node {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	body := root.Content[0]
	if body.Kind == yaml.AliasNode {
		body = body.Alias
	}
	if body.Kind == yaml.ScalarNode && isBlankScalar(body) {
		return nil
	}
	return body
}

// isBlankScalar reports whether a scalar is null, false, zero or "".
func isBlankScalar(n *yaml.Node) bool {
	switch n.ShortTag() {
	case "!!null":
		return true
	case "!!str":
		return n.Value == ""
	case "!!bool":
		var b bool
		return n.Decode(&b) == nil && !b
	case "!!int", "!!float":
		var f float64
		return n.Decode(&f) == nil && (f == 0 || math.IsNaN(f))
	default:
		return false
	}
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}
