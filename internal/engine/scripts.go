package engine

import (
	"path"
	"regexp"
	"strings"

	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

type eolFormat int

const (
	eolLF eolFormat = iota
	eolCRLF
	eolMixed
)

var (
	nonNewlineRe = regexp.MustCompile(`[^\r\n]+`)
	crlfOnlyRe   = regexp.MustCompile(`^(\r\n)*$`)
	shebangRe    = regexp.MustCompile(`^#!\s*(\S+)\s*(.*)$`)
	firstLineRe  = regexp.MustCompile(`\r\n|\r|\n`)
)

var unixInterpreters = map[string]bool{
	"bash": true, "sh": true, "python": true, "python2": true, "python3": true,
}

// validateScript checks a script's interpreter declaration and
// line-ending discipline. UNIX interpreters require LF endings, batch
// scripts CRLF; a shebang on a wrongly-terminated first line is flagged
// separately since the kernel will not honor it.
func (e *Engine) validateScript(script string) {
	content, err := e.ns.Read(script)
	if err != nil {
		return
	}
	// Empty scripts are always considered valid.
	if len(content) == 0 {
		return
	}
	text := string(content)

	eol := classifyEOL(text)
	firstLine := firstLineRe.Split(text, 2)[0]
	interpreter, ok := e.scriptInterpreter(script, firstLine)
	if !ok {
		return
	}

	switch {
	case unixInterpreters[interpreter]:
		if eol != eolLF {
			if eol == eolCRLF {
				e.report(rules.CodeDOSLineEndings, script, "DOS line endings")
			} else {
				e.report(rules.CodeMixedLineEndings, script, "mixed line endings detected")
			}
			if strings.HasPrefix(firstLine, "#!") {
				e.report(rules.CodeShebangUnreliable, script,
					"shebang unreliable, script might not execute properly")
			}
		}
	case interpreter == "bat":
		if eol != eolCRLF {
			if eol == eolLF {
				e.report(rules.CodeUnixLineEndings, script, "UNIX line endings")
			} else {
				e.report(rules.CodeMixedLineEndingsBat, script, "mixed line endings detected")
			}
		}
	default:
		e.report(rules.CodeUnknownInterpreter, script, "interpreter %s has not been validated", interpreter)
	}
}

// scriptInterpreter determines the script's interpreter from its
// shebang, or from the file extension when no shebang is present.
// ok is false when shebang parsing already produced a finding that
// leaves no interpreter to check against.
func (e *Engine) scriptInterpreter(script, firstLine string) (string, bool) {
	m := shebangRe.FindStringSubmatch(firstLine)
	if m == nil {
		switch path.Ext(script) {
		case ".sh":
			return "bash", true
		case ".py":
			return "python", true
		case ".bat":
			return "bat", true
		}
		return "", true
	}

	interpreter := vfs.Base(m[1])
	args := strings.Fields(m[2])

	if interpreter == "env" {
		if len(args) == 0 {
			e.report(rules.CodeNoInterpreter, script, "unable to identify interpreter")
			return "", false
		}
		interpreter = args[0]
		if len(args) > 1 {
			e.report(rules.CodeEnvArguments, script, "too many arguments to env: %s",
				strings.Join(args[1:], " "))
		}
		return interpreter, true
	}

	if len(args) > 0 && args[0] == "-" {
		args = args[1:]
	}
	if len(args) > 0 {
		e.report(rules.CodeShebangArguments, script, "optional shebang arguments might not be used")
	}
	return interpreter, true
}

// classifyEOL buckets the script's line terminators. Anything that is
// neither pure LF nor pure CRLF, including bare CR, counts as mixed.
func classifyEOL(content string) eolFormat {
	newlines := nonNewlineRe.ReplaceAllString(content, "")
	switch {
	case crlfOnlyRe.MatchString(newlines):
		return eolCRLF
	case strings.Contains(newlines, "\n") && !strings.Contains(newlines, "\r"):
		return eolLF
	default:
		return eolMixed
	}
}
