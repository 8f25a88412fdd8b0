package merger

import (
	"fmt"
	"os"
)

type Env map[string]string

// Environment captures the toolchain overrides recognized by the merger.
func Environment() Env {
	return map[string]string{
		"AR":      getenv("AR", ""),
		"RANLIB":  getenv("RANLIB", ""),
		"CYGPATH": getenv("CYGPATH", ""),
	}
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

func (e Env) List() []string {
	var result []string
	for key, value := range e {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}
	return result
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}
