package descriptor

import (
	"regexp"
	"strings"
)

var iocLineSplit = regexp.MustCompile(`\r?\n`)

// IOC is a parsed board-configuration file: flat key=value properties,
// comment lines starting with '#'.
type IOC struct {
	values map[string]string
}

// Board-configuration keys checked by the rulebook.
const (
	IOCKeyProjectFileName = "ProjectManager.ProjectFileName"
	IOCKeyProjectName     = "ProjectManager.ProjectName"
)

// ParseIOC parses board-configuration content. Lines without '=' are
// ignored; later duplicates win.
func ParseIOC(content []byte) *IOC {
	values := make(map[string]string)
	for _, line := range iocLineSplit.Split(string(content), -1) {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		values[key] = value
	}
	return &IOC{values: values}
}

// Get returns the value for key and whether it is present.
func (i *IOC) Get(key string) (string, bool) {
	v, ok := i.values[key]
	return v, ok
}
