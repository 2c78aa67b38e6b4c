package engine

import (
	"sort"
	"strings"

	"github.com/embedtools/archlint/pkg/descriptor"
	"github.com/embedtools/archlint/pkg/mcu"
	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

// validateCubeProject applies the STM32CubeIDE leg of the rulebook.
func (e *Engine) validateCubeProject(proj string) {
	projectName := e.projectName(proj)
	natures := e.natures(proj)

	mcus := e.targetMCUs(proj)
	if len(mcus) == 0 {
		e.report(rules.CodeMCUUndetermined, proj, "unable to determine target microcontroller")
	}

	var family mcu.Family
	haveFamily := false
	if len(mcus) > 0 {
		family, haveFamily = mcu.FamilyOf(mcus[0])
	}
	if len(mcus) > 1 {
		e.report(rules.CodeMultipleMCUs, proj,
			"more than one target microcontroller defined, only basic validation performed: %s",
			strings.Join(mcus, ", "))
		haveFamily = false
	}

	if natures[rules.NatureMCURoot] {
		if haveFamily && family.TrustZone() && !natures[rules.NatureTZDisabled] {
			e.validateTrustZoneChildren(proj)
		}

		dirname := vfs.Base(proj)
		if dirname != "STM32CubeIDE" && dirname != projectName {
			e.report(rules.CodeRootNameMismatch, proj,
				"project name %q does not match directory name %q", projectName, dirname)
		}

		if !e.ns.Exists(vfs.Join(proj, ".cproject")) {
			// Hierarchical roots carry no build of their own.
			for _, nature := range []string{rules.NatureC, rules.NatureCPP} {
				if natures[nature] {
					e.report(rules.CodeHierarchicalNature, proj,
						"nature %q not expected for hierarchical projects", nature)
				}
			}
			return
		}
	}

	// From here on the project is expected to be a leaf C/C++ project.
	if !natures[rules.NatureC] {
		e.report(rules.CodeExpectedCNature, proj, "expected C nature")
	}

	e.validateSysmem(proj)

	doc := e.cproject(proj)
	if doc == nil {
		e.report(rules.CodeUnexpectedConfigOwner, proj, ".cproject file missing")
		return
	}

	if haveFamily {
		switch {
		case family.MultiCore():
			e.validateMultiCoreNaming(proj, projectName, natures)
		case family.TrustZone():
			e.validateTrustZoneNaming(proj, projectName, natures)
		}
	}

	configs := doc.BuildConfigs()
	names := make([]string, len(configs))
	for i, cfg := range configs {
		names[i] = cfg.Name
	}

	if !containsSegment(names, "Debug") {
		e.report(rules.CodeDebugConfigMissing, proj, `expecting a build configuration named "Debug"`)
	}
	if !containsSegment(names, "Release") {
		e.report(rules.CodeReleaseConfigMissing, proj, `expecting a build configuration named "Release"`)
	}
	// The order rule applies only when the set is exactly the two
	// required names.
	if isExactlyDebugRelease(names) && (names[0] != "Debug" || names[1] != "Release") {
		e.report(rules.CodeConfigOrder, proj,
			"wrong order of build configurations: %s", strings.Join(names, ", "))
	}

	for _, cfg := range configs {
		e.validateCubeConfig(proj, projectName, natures, haveFamily, family, cfg)
	}
}

// targetMCUs returns the sorted distinct target microcontrollers for a
// project, falling back to a scan of child directories when the project
// itself declares none.
func (e *Engine) targetMCUs(proj string) []string {
	collect := func(dir string) []string {
		if doc := e.cproject(dir); doc != nil {
			return doc.TargetMCUs(rules.CubeOptTargetMCU)
		}
		return nil
	}

	seen := make(map[string]struct{})
	for _, m := range collect(proj) {
		seen[m] = struct{}{}
	}
	if len(seen) == 0 {
		for _, child := range sortedList(e.ns, proj, vfs.IsDir) {
			for _, m := range collect(child) {
				seen[m] = struct{}{}
			}
		}
	}
	return sortedKeys(seen)
}

// validateTrustZoneChildren checks that a TrustZone-capable root has
// both a secure and a non-secure child project, each reported
// independently.
func (e *Engine) validateTrustZoneChildren(proj string) {
	hasSecure, hasNonSecure := false, false
	for _, child := range sortedList(e.ns, proj, vfs.IsDir) {
		childNatures := e.natures(child)
		if childNatures == nil {
			// Not an Eclipse project.
			continue
		}
		if childNatures[rules.NatureSecure] {
			hasSecure = true
		}
		if childNatures[rules.NatureNonSecure] {
			hasNonSecure = true
		}
	}
	if !hasSecure {
		e.report(rules.CodeSecureChildMissing, proj, "secure project missing")
	}
	if !hasNonSecure {
		e.report(rules.CodeNonSecureChildMissing, proj, "non-secure project missing")
	}
}

// validateMultiCoreNaming checks the multi-CPU sub-project conventions:
// the dedicated nature and the <parent>_<dir> project name.
func (e *Engine) validateMultiCoreNaming(proj, projectName string, natures map[string]bool) {
	if vfs.Base(proj) == "STM32CubeIDE" {
		return
	}
	if !natures[rules.NatureMultiCpu] {
		e.report(rules.CodeMultiCpuNatureMissing, proj, "missing nature %s", rules.NatureMultiCpu)
	}

	parent := vfs.Parent(proj)
	if e.natures(parent)[rules.NatureMCURoot] {
		expected := e.projectName(parent) + "_" + vfs.Base(proj)
		if projectName != expected {
			e.report(rules.CodeSubProjectName, proj,
				"project name %q does not match expected name %q", projectName, expected)
		}
	}
}

// validateTrustZoneNaming checks the secure/non-secure sub-project
// conventions: exclusive natures, <root>_Secure / <root>_NonSecure names
// and the non-secure reference to its secure sibling.
func (e *Engine) validateTrustZoneNaming(proj, projectName string, natures map[string]bool) {
	if natures[rules.NatureSecure] && natures[rules.NatureNonSecure] {
		e.report(rules.CodeBothSecurityNatures, proj, "project cannot be tagged both secure and non-secure")
	}
	if natures[rules.NatureTZDisabled] {
		return
	}

	parent := vfs.Parent(proj)
	parentName := e.projectName(parent)
	if e.natures(parent)[rules.NatureMCURoot] {
		if natures[rules.NatureSecure] && projectName != parentName+"_Secure" {
			e.report(rules.CodeSecureName, proj,
				"project name %q does not match expected secure name %q", projectName, parentName+"_Secure")
		}
		if natures[rules.NatureNonSecure] && projectName != parentName+"_NonSecure" {
			e.report(rules.CodeNonSecureName, proj,
				"project name %q does not match expected non-secure name %q", projectName, parentName+"_NonSecure")
		}
	}

	if natures[rules.NatureNonSecure] {
		secureName := parentName + "_Secure"
		doc := e.project(proj)
		if doc == nil || !doc.ReferenceSet()[secureName] {
			e.report(rules.CodeSecureRefMissing, proj, "missing project reference to %s", secureName)
		}
	}
}

// validateCubeConfig applies the per-configuration checks: ownership,
// toolchain pinning, optimization and debug levels, include paths,
// linker script and inputs, and the TrustZone gateway object.
func (e *Engine) validateCubeConfig(proj, projectName string, natures map[string]bool, haveFamily bool, family mcu.Family, cfg *descriptor.BuildConfig) {
	buildDir := vfs.Join(proj, nameOrDummy(cfg.Name))

	if !strings.HasPrefix(cfg.Parent, rules.CubeConfigParentPrefix) {
		e.report(rules.CodeUnexpectedConfigOwner, proj,
			"unexpected build configuration %q with parent %s", cfg.Name, cfg.Parent)
	}

	e.validateToolchain(proj, cfg)

	wantGateway := haveFamily && family.TrustZone() &&
		!natures[rules.NatureTZDisabled] && natures[rules.NatureNonSecure]
	expectedGateway := "${workspace_loc:/" + strings.ReplaceAll(projectName, "_NonSecure", "_Secure") +
		"/" + cfg.Name + "/secure_nsclib.o}"

	for _, opt := range cfg.Options() {
		superClass := opt.Attr("superClass")
		switch superClass {
		case rules.CubeOptCOptimization:
			e.validateOptimization(proj, cfg.Name, opt, "C", rules.COptimizationDebug, rules.COptimizationRelease)
		case rules.CubeOptCPPOptimization:
			e.validateOptimization(proj, cfg.Name, opt, "CPP", rules.CPPOptimizationDebug, rules.CPPOptimizationRelease)
		case rules.CubeOptCDebugLevel:
			e.validateDebugLevel(proj, cfg.Name, opt, "C", rules.CDebugLevelMax, rules.CDebugLevelNone)
		case rules.CubeOptCPPDebugLevel:
			e.validateDebugLevel(proj, cfg.Name, opt, "CPP", rules.CPPDebugLevelMax, rules.CPPDebugLevelNone)
		case rules.CubeOptASMIncludes:
			e.validateIncludePaths(proj, buildDir, opt, "ASM")
		case rules.CubeOptCIncludes:
			e.validateIncludePaths(proj, buildDir, opt, "C")
		case rules.CubeOptCPPIncludes:
			e.validateIncludePaths(proj, buildDir, opt, "CPP")
		case rules.CubeOptCLinkerScript:
			e.validateLinkerScript(proj, buildDir, opt, "C")
		case rules.CubeOptCPPLinkerScript:
			e.validateLinkerScript(proj, buildDir, opt, "CPP")
		case rules.CubeOptCAdditionalObjs, rules.CubeOptCPPAdditionalObjs:
			tool := "C"
			if superClass == rules.CubeOptCPPAdditionalObjs {
				tool = "CPP"
			}
			values := descriptor.ListValues(opt)
			for _, v := range values {
				if v == "" {
					e.report(rules.CodeEmptyAdditionalObject, proj,
						`%s linker "" is not a valid additional object`, tool)
					break
				}
			}
			if wantGateway && !containsSegment(values, expectedGateway) {
				e.report(rules.CodeSecureGatewayMissing, proj,
					"missing secure_nsclib.o on %s linker: %s", tool, expectedGateway)
			}
		}
	}

	for _, inputType := range cfg.InputTypes() {
		var tool string
		switch inputType.Attr("superClass") {
		case rules.CubeInputCLinker:
			tool = "C"
		case rules.CubeInputCPPLinker:
			tool = "CPP"
		default:
			continue
		}
		if !containsSegment(descriptor.AdditionalInputPaths(inputType), rules.LibsInputToken) {
			e.report(rules.CodeLibsInputMissing, proj, "missing %s on %s linker", rules.LibsInputToken, tool)
		}
	}
}

// validateToolchain flags configurations pinned to a fixed toolchain,
// including the legacy default/type/version declaration form.
func (e *Engine) validateToolchain(proj string, cfg *descriptor.BuildConfig) {
	toolchain, ok := cfg.OptionValue(rules.CubeOptToolchain)
	if !ok {
		if def, _ := cfg.OptionValue(rules.CubeOptToolchainDefault); def == "false" {
			tcType, _ := cfg.OptionValue(rules.CubeOptToolchainType)
			tcVersion, _ := cfg.OptionValue(rules.CubeOptToolchainVersion)
			e.report(rules.CodeFixedToolchain, proj,
				"fixed toolchain detected (%s, %s), but should not be set", tcType, tcVersion)
		}
		return
	}
	if toolchain != rules.CubeToolchainWorkspace {
		e.report(rules.CodeFixedToolchain, proj,
			"fixed toolchain detected (%s), but should not be set", toolchain)
	}
}

// validateOptimization checks one compiler optimization-level option
// against the expected codes for the Debug and Release configurations.
func (e *Engine) validateOptimization(proj, configName string, opt *descriptor.Node, tool string, debugCodes, releaseCodes []string) {
	if !opt.HasAttr("value") {
		if e.cfg.Pedantic {
			e.report(rules.CodeNoOptimizationLevel, proj, "no %s optimization level defined", tool)
		}
		return
	}
	value := opt.Attr("value")
	if (configName == "Debug" && !containsSegment(debugCodes, value)) ||
		(configName == "Release" && !containsSegment(releaseCodes, value)) {
		e.report(rules.CodeOptimizationLevel, proj, "wrong %s optimization level: %s", tool, value)
	}
}

// validateDebugLevel checks one compiler debug-level option: maximum
// debug info for Debug, none for Release.
func (e *Engine) validateDebugLevel(proj, configName string, opt *descriptor.Node, tool, maxCode, noneCode string) {
	if !opt.HasAttr("value") {
		if e.cfg.Pedantic {
			e.report(rules.CodeNoDebugLevel, proj, "no %s debug level defined", tool)
		}
		return
	}
	value := opt.Attr("value")
	if (configName == "Debug" && value != maxCode) ||
		(configName == "Release" && value != noneCode) {
		e.report(rules.CodeDebugLevel, proj, "wrong %s debug level: %s", tool, value)
	}
}

func isExactlyDebugRelease(names []string) bool {
	if len(names) != 2 {
		return false
	}
	set := map[string]bool{names[0]: true, names[1]: true}
	return set["Debug"] && set["Release"]
}

func nameOrDummy(name string) string {
	if name == "" {
		return "dummy"
	}
	return name
}

// sortedList materializes a namespace listing in sorted order so
// repeated runs visit entries deterministically.
func sortedList(ns *vfs.Layered, prefix string, pred func(string) bool) []string {
	var out []string
	for p := range ns.List(prefix, pred) {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
