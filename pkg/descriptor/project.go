// Package descriptor parses the IDE project descriptor formats: the
// .project resource descriptor, the .cproject managed-build descriptor
// and the .ioc board-configuration file.
package descriptor

import (
	"encoding/xml"
	"fmt"
)

// Link types used in .project linked resources.
const (
	LinkTypeFile      = 1
	LinkTypeDirectory = 2
)

// VirtualDirLocation marks a directory link with no backing resource.
const VirtualDirLocation = "virtual:/virtual"

// Link is one linkedResources/link declaration. Fields are pointers so
// an absent element can be told apart from an empty one; descriptor
// writers have been seen emitting fully empty link nodes.
type Link struct {
	Name        *string `xml:"name"`
	Type        *int    `xml:"type"`
	Location    *string `xml:"location"`
	LocationURI *string `xml:"locationURI"`
}

// Empty reports whether the link node carries no data at all.
func (l Link) Empty() bool {
	return l.Name == nil && l.Type == nil && l.Location == nil && l.LocationURI == nil
}

// Source returns the link's declared location, preferring the newer
// locationURI element over the legacy location form.
func (l Link) Source() string {
	if l.LocationURI != nil {
		return *l.LocationURI
	}
	if l.Location != nil {
		return *l.Location
	}
	return ""
}

// Dest returns the name the link maps into the project, or "".
func (l Link) Dest() string {
	if l.Name != nil {
		return *l.Name
	}
	return ""
}

// Project is a parsed .project descriptor.
type Project struct {
	XMLName    xml.Name `xml:"projectDescription"`
	Name       string   `xml:"name"`
	References []string `xml:"projects>project"`
	NatureList []string `xml:"natures>nature"`
	Links      []Link   `xml:"linkedResources>link"`
}

// Natures returns the declared capability tags as a set.
func (p *Project) Natures() map[string]bool {
	set := make(map[string]bool, len(p.NatureList))
	for _, n := range p.NatureList {
		set[n] = true
	}
	return set
}

// HasNature reports whether the project declares the given nature tag.
func (p *Project) HasNature(nature string) bool {
	for _, n := range p.NatureList {
		if n == nature {
			return true
		}
	}
	return false
}

// ReferenceSet returns the declared project-to-project references as a set.
func (p *Project) ReferenceSet() map[string]bool {
	set := make(map[string]bool, len(p.References))
	for _, r := range p.References {
		set[r] = true
	}
	return set
}

// ParseProject parses .project descriptor content.
func ParseProject(content []byte) (*Project, error) {
	var p Project
	if err := xml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("parsing project descriptor: %w", err)
	}
	return &p, nil
}
