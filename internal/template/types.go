package template

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Template defaults shared by every document.
const (
	// DefaultFormatVersion is the ROS template format version written to new templates.
	DefaultFormatVersion = "2015-09-01"

	// DefaultTransform is the serverless pipeline every template must declare.
	DefaultTransform = "Aliyun::Serverless-2018-04-03"
)

// Resource types with dedicated collision messages.
const (
	ServiceType      = "Aliyun::Serverless::Service"
	CustomDomainType = "Aliyun::Serverless::CustomDomain"
)

// Candidate file names, probed in order.
const (
	PrimaryFileName  = "template.yml"
	FallbackFileName = "template.yaml"
)

// FileNames lists the template file names in probe order.
var FileNames = []string{PrimaryFileName, FallbackFileName}

// Document is a parsed template.
type Document struct {
	// FormatVersion is the ROS template format version.
	FormatVersion string `yaml:"ROSTemplateFormatVersion"`

	// Transform declares the processing pipeline(s) for the template.
	Transform Transform `yaml:"Transform,omitempty"`

	// Resources maps resource names to their descriptors.
	Resources map[string]Resource `yaml:"Resources"`

	// Extra holds any other top-level keys so they survive a round trip.
	Extra map[string]any `yaml:",inline"`
}

// DefaultDocument returns the canonical empty template.
func DefaultDocument() *Document {
	return &Document{
		FormatVersion: DefaultFormatVersion,
		Transform:     ScalarTransform(DefaultTransform),
		Resources:     make(map[string]Resource),
	}
}

// Resource is a single entry under Resources. Fields other than Type are opaque.
type Resource map[string]any

// UnmarshalYAML decodes the descriptor into a plain map so nested mappings
// come back as map[string]any rather than Resource.
func (r *Resource) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return err
	}
	*r = m
	return nil
}

// Type returns the declared resource type, or "" when unset.
func (r Resource) Type() string {
	if r == nil {
		return ""
	}
	switch v := r["Type"].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SetIfPresent sets key to value unless value is nil or the zero value of a
// string, bool, number, map or slice.
func (r Resource) SetIfPresent(key string, value any) {
	if r == nil || isEmptyValue(value) {
		return
	}
	r[key] = value
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case map[string]any:
		return v == nil
	case []any:
		return v == nil
	default:
		return false
	}
}

// ResourceNames returns the resource names in sorted order.
func (d *Document) ResourceNames() []string {
	names := lo.Keys(d.Resources)
	sort.Strings(names)
	return names
}

// CodeURI returns the conventional code location for a function.
func CodeURI(serviceName, functionName string) string {
	return fmt.Sprintf("./%s/%s", serviceName, functionName)
}
