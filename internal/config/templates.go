package config

import (
	"fmt"
	"os"
)

// Template returns a commented config file matching Default.
func Template() string {
	return configTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `# slpcheck configuration. Every key is optional; flags and SLPCHECK_*
# environment variables override values set here.

# trace, debug, info, warn, error, disabled
log_level = "info"
log_timestamp = true
log_nocolor = false

# parallel validations when the target is a directory
workers = 4

# sqlite file for per-replay results; empty disables the report
report = ""
`
