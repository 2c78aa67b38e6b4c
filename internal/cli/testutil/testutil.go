// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/embedtools/archlint/internal/cli/output"
)

// validProject is a minimal STM32CubeIDE project descriptor pair that
// passes validation.
const validProjectFile = `<?xml version="1.0" encoding="UTF-8"?>
<projectDescription>
  <name>Blinky</name>
  <projects/>
  <natures>
    <nature>org.eclipse.cdt.core.cnature</nature>
  </natures>
</projectDescription>`

const validCProjectFile = `<?xml version="1.0" encoding="UTF-8"?>
<cproject>
  <storageModule moduleId="cdtBuildSystem" version="4.0.0">
    <configuration name="Debug" parent="com.st.stm32cube.ide.mcu.gnu.managedbuild.config.exe.debug">
      <folderInfo>
        <toolChain>
          <option superClass="com.st.stm32cube.ide.mcu.gnu.managedbuild.option.target_mcu" value="STM32F407VGTx"/>
        </toolChain>
      </folderInfo>
    </configuration>
    <configuration name="Release" parent="com.st.stm32cube.ide.mcu.gnu.managedbuild.config.exe.release">
      <folderInfo>
        <toolChain>
        </toolChain>
      </folderInfo>
    </configuration>
  </storageModule>
</cproject>`

// SetupTestArchive creates a directory archive holding one valid
// STM32CubeIDE project and returns its path.
func SetupTestArchive(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "archive")
	files := map[string]string{
		"Blinky/STM32CubeIDE/.project":  validProjectFile,
		"Blinky/STM32CubeIDE/.cproject": validCProjectFile,
	}
	WriteArchiveFiles(t, root, files)
	return root
}

// WriteArchiveFiles writes the given relative-path/content pairs under
// root, creating parent directories as needed.
func WriteArchiveFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a renderer with the given mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}
