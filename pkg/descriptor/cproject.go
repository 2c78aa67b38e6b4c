package descriptor

import (
	"encoding/xml"
	"fmt"
)

// The .cproject format is a deeply nested, schema-less managed-build
// dump. Rather than modelling every element, it is parsed into a generic
// node tree and queried by tag and attribute.

// Node is a generic XML element.
type Node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []Node     `xml:",any"`
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the attribute is declared at all. Some checks
// treat an absent value differently from an empty one.
func (n *Node) HasAttr(name string) bool {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}

// Descendants appends every descendant element with the given tag, in
// document order.
func (n *Node) Descendants(tag string) []*Node {
	var out []*Node
	n.walk(func(child *Node) {
		if child.XMLName.Local == tag {
			out = append(out, child)
		}
	})
	return out
}

func (n *Node) walk(visit func(*Node)) {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		visit(child)
		child.walk(visit)
	}
}

// CProject is a parsed .cproject managed-build descriptor.
type CProject struct {
	root Node
}

// ParseCProject parses .cproject descriptor content.
func ParseCProject(content []byte) (*CProject, error) {
	var root Node
	if err := xml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parsing build descriptor: %w", err)
	}
	return &CProject{root: root}, nil
}

// BuildConfig is one build configuration within the cdtBuildSystem
// storage module.
type BuildConfig struct {
	Name   string
	Parent string
	node   *Node
}

// BuildConfigs returns the configurations declared under the
// cdtBuildSystem storage module, in declaration order.
func (c *CProject) BuildConfigs() []*BuildConfig {
	var out []*BuildConfig
	for _, sm := range c.root.Descendants("storageModule") {
		if sm.Attr("moduleId") != "cdtBuildSystem" {
			continue
		}
		for i := range sm.Nodes {
			cfg := &sm.Nodes[i]
			if cfg.XMLName.Local != "configuration" {
				continue
			}
			out = append(out, &BuildConfig{
				Name:   cfg.Attr("name"),
				Parent: cfg.Attr("parent"),
				node:   cfg,
			})
		}
	}
	return out
}

// AllConfigs returns every configuration element in the document,
// regardless of which storage module owns it. The legacy build
// descriptors keep tool options under a second configuration tree.
func (c *CProject) AllConfigs() []*BuildConfig {
	var out []*BuildConfig
	for _, cfg := range c.root.Descendants("configuration") {
		out = append(out, &BuildConfig{
			Name:   cfg.Attr("name"),
			Parent: cfg.Attr("parent"),
			node:   cfg,
		})
	}
	return out
}

// TargetMCUs collects the distinct target microcontroller names declared
// by any toolchain in the build descriptor.
func (c *CProject) TargetMCUs(targetOptionID string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, opt := range c.root.Descendants("option") {
		if opt.Attr("superClass") != targetOptionID {
			continue
		}
		if v := opt.Attr("value"); v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Options returns every option element under the configuration.
func (b *BuildConfig) Options() []*Node {
	return b.node.Descendants("option")
}

// InputTypes returns every inputType element under the configuration.
func (b *BuildConfig) InputTypes() []*Node {
	return b.node.Descendants("inputType")
}

// OptionValue returns the value attribute of the first option with the
// given superClass, and whether such an option exists.
func (b *BuildConfig) OptionValue(superClass string) (string, bool) {
	for _, opt := range b.node.Descendants("option") {
		if opt.Attr("superClass") == superClass {
			return opt.Attr("value"), true
		}
	}
	return "", false
}

// ListValues returns the value attributes of an option's listOptionValue
// children, in declaration order.
func ListValues(opt *Node) []string {
	var out []string
	for i := range opt.Nodes {
		child := &opt.Nodes[i]
		if child.XMLName.Local == "listOptionValue" {
			out = append(out, child.Attr("value"))
		}
	}
	return out
}

// AdditionalInputPaths returns the paths attributes of an inputType's
// additionalInput children.
func AdditionalInputPaths(inputType *Node) []string {
	var out []string
	for i := range inputType.Nodes {
		child := &inputType.Nodes[i]
		if child.XMLName.Local == "additionalInput" {
			out = append(out, child.Attr("paths"))
		}
	}
	return out
}
