package gltest

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uniformDecl    = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?uniform\s+(?:(?:highp|mediump|lowp)\s+)?\w+\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)
	errorDirective = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

// compile mimics a separable program link. A source containing an #error
// directive fails to link with the directive text as its info log.
func compile(source string) (linked bool, log string) {
	if m := errorDirective.FindStringSubmatch(source); m != nil {
		return false, "0:1(1): error: " + strings.TrimSpace(m[1])
	}
	if strings.TrimSpace(source) == "" {
		return false, "error: empty program source"
	}
	return true, ""
}

// activeUniforms returns the uniform names declared in source, in
// declaration order. Arrays are reported as name[0], as drivers do.
func activeUniforms(source string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range uniformDecl.FindAllStringSubmatch(source, -1) {
		name := m[1]
		if m[2] != "" {
			name += "[0]"
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func trimArray(name string) string {
	return strings.TrimSuffix(name, "[0]")
}

func fmtVersion(major, minor int32) string {
	return fmt.Sprintf("%d.%d.0 gltest", major, minor)
}

func fmtGLSLVersion(major, minor int32) string {
	return fmt.Sprintf("%d.%d0", major, minor)
}
