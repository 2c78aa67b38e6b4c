package rules

// Marker directory names whose parent is treated as a project root.
var IDEMarkerDirs = []string{"EWARM", "MDK-ARM", "STM32CubeIDE", "TrueSTUDIO", "SW4STM32"}

// Eclipse-based IDE directory names searched below a project root when
// classifying it.
var EclipseIDEDirs = []string{"STM32CubeIDE", "TrueSTUDIO", "SW4STM32"}

// Nature tags.
const (
	NatureC           = "org.eclipse.cdt.core.cnature"
	NatureCPP         = "org.eclipse.cdt.core.ccnature"
	NatureMCURoot     = "com.st.stm32cube.ide.mcu.MCURootProjectNature"
	NatureSecure      = "com.st.stm32cube.ide.mcu.MCUSecureProjectNature"
	NatureNonSecure   = "com.st.stm32cube.ide.mcu.MCUNonSecureProjectNature"
	NatureTZDisabled  = "com.st.stm32cube.ide.mcu.MCUEndUserDisabledTrustZoneProjectNature"
	NatureMultiCpu    = "com.st.stm32cube.ide.mcu.MCUMultiCpuProjectNature"
)

// Build-configuration parent prefixes per build system.
const (
	CubeConfigParentPrefix = "com.st.stm32cube.ide."
	SW4ConfigParentPrefix  = "fr.ac6.managedbuild."
)

// STM32CubeIDE managed-build option identifiers.
const (
	CubeOptTargetMCU        = "com.st.stm32cube.ide.mcu.gnu.managedbuild.option.target_mcu"
	CubeOptToolchain        = "com.st.stm32cube.ide.mcu.gnu.managedbuild.option.toolchain"
	CubeToolchainWorkspace  = "com.st.stm32cube.ide.mcu.gnu.managedbuild.option.toolchain.value.workspace"
	CubeOptToolchainDefault = "com.st.stm32cube.ide.mcu.option.internal.toolchain.default"
	CubeOptToolchainType    = "com.st.stm32cube.ide.mcu.option.internal.toolchain.type"
	CubeOptToolchainVersion = "com.st.stm32cube.ide.mcu.option.internal.toolchain.version"

	CubeOptCOptimization   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.optimization.level"
	CubeOptCPPOptimization = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.optimization.level"
	CubeOptCDebugLevel     = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.debuglevel"
	CubeOptCPPDebugLevel   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.debuglevel"

	CubeOptASMIncludes = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.assembler.option.includepaths"
	CubeOptCIncludes   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.includepaths"
	CubeOptCPPIncludes = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.includepaths"

	CubeOptCLinkerScript   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.linker.option.script"
	CubeOptCPPLinkerScript = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.linker.option.script"
	CubeOptCAdditionalObjs = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.linker.option.additionalobjs"
	CubeOptCPPAdditionalObjs = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.linker.option.additionalobjs"

	CubeInputCLinker   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.linker.input"
	CubeInputCPPLinker = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.linker.input"
)

// SW4STM32 (legacy AC6) option identifiers.
const (
	SW4OptASMIncludes     = "gnu.both.asm.option.include.paths"
	SW4OptCIncludes       = "gnu.c.compiler.option.include.paths"
	SW4OptCPPIncludes     = "gnu.cpp.compiler.option.include.paths"
	SW4OptCLinkerScript   = "fr.ac6.managedbuild.tool.gnu.cross.c.linker.script"
	SW4OptCPPLinkerScript = "fr.ac6.managedbuild.tool.gnu.cross.cpp.linker"
)

// Optimization and debug level codes per configuration. Debug builds use
// no or debug-friendly optimization with full debug info; Release builds
// optimize for size with debug info stripped.
var (
	COptimizationDebug = []string{
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.optimization.level.value.o0",
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.optimization.level.value.og",
	}
	COptimizationRelease = []string{
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.optimization.level.value.os",
	}
	CPPOptimizationDebug = []string{
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.optimization.level.value.o0",
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.optimization.level.value.og",
	}
	CPPOptimizationRelease = []string{
		"com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.optimization.level.value.os",
	}
)

// Debug-info level codes.
const (
	CDebugLevelMax    = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.debuglevel.value.g3"
	CDebugLevelNone   = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.c.compiler.option.debuglevel.value.g0"
	CPPDebugLevelMax  = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.debuglevel.value.g3"
	CPPDebugLevelNone = "com.st.stm32cube.ide.mcu.gnu.managedbuild.tool.cpp.compiler.option.debuglevel.value.g0"
)

// LibsInputToken is the shared-library placeholder every linker input
// must reference.
const LibsInputToken = "$(LIBS)"

// Required configuration names, in required declaration order.
var RequiredConfigs = []string{"Debug", "Release"}
