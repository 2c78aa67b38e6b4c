package rules

// Rule groups.
const (
	GroupStructure = "structure"
	GroupTree      = "tree"
	GroupResource  = "resource"
	GroupIOC       = "ioc"
	GroupBuildCfg  = "buildcfg"
	GroupTrustZone = "trustzone"
	GroupScript    = "script"
)

// Rule codes. The ER numbering is the stable public taxonomy; reports
// and exclude filters key on these strings.
const (
	CodeStaleSubProject       = "ER001"
	CodeProjectMissing        = "ER002"
	CodeIOCFileNameAttr       = "ER003"
	CodeIOCProjectNameAttr    = "ER004"
	CodeLinkTypeUnvalidated   = "ER005"
	CodeIOCUnlinked           = "ER006"
	CodeMixedIDETree          = "ER007"
	CodeEmptyLinkNode         = "ER008"
	CodeExpectedCNatureSW4    = "ER009"
	CodeCProjectMissingSW4    = "ER010"
	CodeUnexpectedConfigOwner = "ER011"
	CodeMCUUndetermined       = "ER012"
	CodeMultipleMCUs          = "ER013"
	CodeSecureChildMissing    = "ER014"
	CodeNonSecureChildMissing = "ER015"
	CodeRootNameMismatch      = "ER016"
	CodeHierarchicalNature    = "ER017"
	CodeExpectedCNature       = "ER018"
	CodeMultiCpuNatureMissing = "ER019"
	CodeSubProjectName        = "ER020"
	CodeBothSecurityNatures   = "ER021"
	CodeSecureName            = "ER022"
	CodeNonSecureName         = "ER023"
	CodeSecureRefMissing      = "ER024"
	CodeDebugConfigMissing    = "ER025"
	CodeReleaseConfigMissing  = "ER026"
	CodeConfigOrder           = "ER027"
	CodeOptimizationLevel     = "ER028"
	CodeNoDebugLevel          = "ER029"
	CodeDebugLevel            = "ER030"
	CodeEmptyAdditionalObject = "ER031"
	CodeSecureGatewayMissing  = "ER032"
	CodeLibsInputMissing      = "ER033"
	CodeFixedToolchain        = "ER034"
	CodeSysmemContent         = "ER035"
	CodeNoInterpreter         = "ER036"
	CodeEnvArguments          = "ER037"
	CodeShebangArguments      = "ER038"
	CodeDOSLineEndings        = "ER039"
	CodeMixedLineEndings      = "ER040"
	CodeShebangUnreliable     = "ER041"
	CodeUnixLineEndings       = "ER042"
	CodeMixedLineEndingsBat   = "ER043"
	CodeUnknownInterpreter    = "ER044"
	CodeEmptyIncludePath      = "ER045"
	CodeIncludeUnverifiable   = "ER046"
	CodeIncludeWrongCase      = "ER047"
	CodeIncludeMissing        = "ER048"
	CodeLinkerUnverifiable    = "ER049"
	CodeLinkerWrongCase       = "ER050"
	CodeLinkerMissing         = "ER051"
	CodeLinkWrongCase         = "ER052"
	CodeLinkMissing           = "ER053"
	CodeLinkHidesResources    = "ER054"
	CodeNoOptimizationLevel   = "ER055"
	CodeIDEProjectMissing     = "ER100"
)

func init() {
	for _, def := range []Def{
		{Code: CodeStaleSubProject, Name: "stale-subproject", Group: GroupStructure, Severity: SeverityError, Description: "RemoteSystemsTempFiles sub-project should be removed"},
		{Code: CodeProjectMissing, Name: "project-descriptor-missing", Group: GroupStructure, Severity: SeverityError, Description: ".project descriptor missing from project directory"},
		{Code: CodeIOCFileNameAttr, Name: "ioc-filename-attribute", Group: GroupIOC, Severity: SeverityWarning, Description: "Board-configuration ProjectFileName attribute does not match the file name"},
		{Code: CodeIOCProjectNameAttr, Name: "ioc-projectname-attribute", Group: GroupIOC, Severity: SeverityWarning, Description: "Board-configuration ProjectName attribute does not match the file name"},
		{Code: CodeLinkTypeUnvalidated, Name: "link-type-unvalidated", Group: GroupResource, Severity: SeverityWarning, Advisory: true, Description: "Linked resource type is not covered by validation"},
		{Code: CodeIOCUnlinked, Name: "ioc-unlinked", Group: GroupIOC, Severity: SeverityError, Description: "Board-configuration files not referenced by any project link"},
		{Code: CodeMixedIDETree, Name: "mixed-ide-tree", Group: GroupTree, Severity: SeverityError, Description: "SW4STM32 and STM32CubeIDE directories mixed in one project tree"},
		{Code: CodeEmptyLinkNode, Name: "empty-link-node", Group: GroupResource, Severity: SeverityError, Description: "Empty linked-resource node in project descriptor"},
		{Code: CodeExpectedCNatureSW4, Name: "expected-c-nature-sw4", Group: GroupStructure, Severity: SeverityError, Description: "SW4STM32 project is expected to declare the C nature"},
		{Code: CodeCProjectMissingSW4, Name: "cproject-missing-sw4", Group: GroupStructure, Severity: SeverityError, Description: ".cproject descriptor missing from SW4STM32 project"},
		{Code: CodeUnexpectedConfigOwner, Name: "unexpected-config-owner", Group: GroupBuildCfg, Severity: SeverityError, Description: ".cproject missing or build configuration declared for a foreign build system"},
		{Code: CodeMCUUndetermined, Name: "mcu-undetermined", Group: GroupBuildCfg, Severity: SeverityError, Description: "Unable to determine target microcontroller for project"},
		{Code: CodeMultipleMCUs, Name: "multiple-mcus", Group: GroupBuildCfg, Severity: SeverityError, Description: "More than one target microcontroller declared; only basic validation performed"},
		{Code: CodeSecureChildMissing, Name: "secure-child-missing", Group: GroupTrustZone, Severity: SeverityError, Description: "TrustZone root has no secure child project"},
		{Code: CodeNonSecureChildMissing, Name: "nonsecure-child-missing", Group: GroupTrustZone, Severity: SeverityError, Description: "TrustZone root has no non-secure child project"},
		{Code: CodeRootNameMismatch, Name: "root-name-mismatch", Group: GroupStructure, Severity: SeverityError, Description: "Root project name does not match its directory name"},
		{Code: CodeHierarchicalNature, Name: "hierarchical-nature", Group: GroupStructure, Severity: SeverityError, Description: "C/C++ nature not expected on a hierarchical root project"},
		{Code: CodeExpectedCNature, Name: "expected-c-nature", Group: GroupStructure, Severity: SeverityError, Description: "Project is expected to declare the C nature"},
		{Code: CodeMultiCpuNatureMissing, Name: "multicpu-nature-missing", Group: GroupStructure, Severity: SeverityError, Description: "Multi-CPU sub-project is missing the multi-CPU nature"},
		{Code: CodeSubProjectName, Name: "subproject-name", Group: GroupStructure, Severity: SeverityError, Description: "Sub-project name does not match <root>_<directory>"},
		{Code: CodeBothSecurityNatures, Name: "both-security-natures", Group: GroupTrustZone, Severity: SeverityError, Description: "Project tagged both secure and non-secure"},
		{Code: CodeSecureName, Name: "secure-name", Group: GroupTrustZone, Severity: SeverityError, Description: "Secure project name does not match <root>_Secure"},
		{Code: CodeNonSecureName, Name: "nonsecure-name", Group: GroupTrustZone, Severity: SeverityError, Description: "Non-secure project name does not match <root>_NonSecure"},
		{Code: CodeSecureRefMissing, Name: "secure-reference-missing", Group: GroupTrustZone, Severity: SeverityError, Description: "Non-secure project does not reference its secure sibling"},
		{Code: CodeDebugConfigMissing, Name: "debug-config-missing", Group: GroupBuildCfg, Severity: SeverityError, Description: "Build configuration named Debug is required"},
		{Code: CodeReleaseConfigMissing, Name: "release-config-missing", Group: GroupBuildCfg, Severity: SeverityError, Description: "Build configuration named Release is required"},
		{Code: CodeConfigOrder, Name: "config-order", Group: GroupBuildCfg, Severity: SeverityError, Description: "Debug must be declared before Release"},
		{Code: CodeOptimizationLevel, Name: "optimization-level", Group: GroupBuildCfg, Severity: SeverityError, Description: "Wrong optimization level for configuration"},
		{Code: CodeNoDebugLevel, Name: "no-debug-level", Group: GroupBuildCfg, Severity: SeverityError, Description: "No debug level declared (pedantic)"},
		{Code: CodeDebugLevel, Name: "debug-level", Group: GroupBuildCfg, Severity: SeverityError, Description: "Wrong debug level for configuration"},
		{Code: CodeEmptyAdditionalObject, Name: "empty-additional-object", Group: GroupBuildCfg, Severity: SeverityError, Description: "Empty string listed as linker additional object"},
		{Code: CodeSecureGatewayMissing, Name: "secure-gateway-missing", Group: GroupTrustZone, Severity: SeverityError, Description: "secure_nsclib.o missing from non-secure linker objects"},
		{Code: CodeLibsInputMissing, Name: "libs-input-missing", Group: GroupBuildCfg, Severity: SeverityError, Description: "$(LIBS) missing from linker additional inputs"},
		{Code: CodeFixedToolchain, Name: "fixed-toolchain", Group: GroupBuildCfg, Severity: SeverityError, Description: "Fixed toolchain selected; workspace toolchain expected"},
		{Code: CodeSysmemContent, Name: "sysmem-content", Group: GroupStructure, Severity: SeverityError, Description: "sysmem.c content does not match the reference fingerprint"},
		{Code: CodeNoInterpreter, Name: "no-interpreter", Group: GroupScript, Severity: SeverityError, Description: "Unable to identify script interpreter"},
		{Code: CodeEnvArguments, Name: "env-arguments", Group: GroupScript, Severity: SeverityError, Description: "Too many arguments passed to env in shebang"},
		{Code: CodeShebangArguments, Name: "shebang-arguments", Group: GroupScript, Severity: SeverityError, Description: "Shebang interpreter arguments might not be honored"},
		{Code: CodeDOSLineEndings, Name: "dos-line-endings", Group: GroupScript, Severity: SeverityError, Description: "DOS line endings in a script requiring UNIX endings"},
		{Code: CodeMixedLineEndings, Name: "mixed-line-endings", Group: GroupScript, Severity: SeverityError, Description: "Mixed line endings detected"},
		{Code: CodeShebangUnreliable, Name: "shebang-unreliable", Group: GroupScript, Severity: SeverityError, Description: "Shebang unreliable due to line endings; script might not execute"},
		{Code: CodeUnixLineEndings, Name: "unix-line-endings", Group: GroupScript, Severity: SeverityError, Description: "UNIX line endings in a batch script requiring DOS endings"},
		{Code: CodeMixedLineEndingsBat, Name: "mixed-line-endings-bat", Group: GroupScript, Severity: SeverityError, Description: "Mixed line endings detected in batch script"},
		{Code: CodeUnknownInterpreter, Name: "unknown-interpreter", Group: GroupScript, Severity: SeverityError, Description: "Script interpreter is not covered by validation"},
		{Code: CodeEmptyIncludePath, Name: "empty-include-path", Group: GroupBuildCfg, Severity: SeverityError, Description: "Empty string listed as include path"},
		{Code: CodeIncludeUnverifiable, Name: "include-unverifiable", Group: GroupResource, Severity: SeverityInfo, Description: "Include path uses a workspace variable that cannot be verified"},
		{Code: CodeIncludeWrongCase, Name: "include-wrong-case", Group: GroupResource, Severity: SeverityError, Description: "Include path exists in the archive only under a different case"},
		{Code: CodeIncludeMissing, Name: "include-missing", Group: GroupResource, Severity: SeverityError, Description: "Include path missing from archive"},
		{Code: CodeLinkerUnverifiable, Name: "linker-script-unverifiable", Group: GroupResource, Severity: SeverityInfo, Description: "Linker script uses a workspace variable that cannot be verified"},
		{Code: CodeLinkerWrongCase, Name: "linker-script-wrong-case", Group: GroupResource, Severity: SeverityError, Description: "Linker script exists in the archive only under a different case"},
		{Code: CodeLinkerMissing, Name: "linker-script-missing", Group: GroupResource, Severity: SeverityError, Description: "Linker script missing from archive"},
		{Code: CodeLinkWrongCase, Name: "link-wrong-case", Group: GroupResource, Severity: SeverityError, Description: "Linked resource exists in the archive only under a different case"},
		{Code: CodeLinkMissing, Name: "link-missing", Group: GroupResource, Severity: SeverityError, Description: "Linked resource missing from archive"},
		{Code: CodeLinkHidesResources, Name: "link-hides-resources", Group: GroupResource, Severity: SeverityError, Description: "Link destination hides differently-cased resources in the archive"},
		{Code: CodeNoOptimizationLevel, Name: "no-optimization-level", Group: GroupBuildCfg, Severity: SeverityError, Description: "No optimization level declared (pedantic)"},
		{Code: CodeIDEProjectMissing, Name: "ide-project-missing", Group: GroupStructure, Severity: SeverityError, Description: "No managed IDE project found under the project directory"},
	} {
		Register(def)
	}
}
