package config

import (
	"fmt"
	"os"
	"regexp"
)

// envVarPattern matches ${VAR_NAME} references inside config values
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandEnvRefs replaces ${VAR} references with their environment values,
// so memedao.toml can hold rpc_url = "https://node/${API_KEY}" without the secret.
// A reference to an unset variable is an error.
func ExpandEnvRefs(raw string) (string, error) {
	var missing string
	out := envVarPattern.ReplaceAllStringFunc(raw, func(ref string) string {
		name := envVarPattern.FindStringSubmatch(ref)[1]
		val, ok := os.LookupEnv(name)
		if !ok && missing == "" {
			missing = name
		}
		return val
	})
	if missing != "" {
		return "", fmt.Errorf("environment variable %s is not set", missing)
	}
	return out, nil
}
