package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces environment references in content. Unresolved
// references are left in place and reported in missing. Comment lines are
// not substituted.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			value, problem := resolveEnvVar(envVarPattern.FindStringSubmatch(match))
			if problem != "" {
				missing = append(missing, problem)
				return match
			}
			return value
		})
	}
	return strings.Join(lines, "\n"), missing
}

// resolveEnvVar returns the substitution for one match, or a non-empty
// problem when it cannot be resolved.
func resolveEnvVar(m []string) (value, problem string) {
	name, op, arg := m[1], m[2], m[3]
	value, ok := os.LookupEnv(name)

	switch op {
	case "-":
		if value == "" {
			return arg, ""
		}
		return value, ""
	case "?":
		if value == "" {
			return "", name + ": " + strings.TrimSpace(arg)
		}
		return value, ""
	}

	if !ok {
		return "", name
	}
	return value, ""
}
