package vulnerabilities

import (
	"fmt"
)

// validateVulnerabilitiesArgs validates the arguments provided to the
// vulnerabilities command.
func validateVulnerabilitiesArgs(options *runOptions, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one positional argument is required: the project key")
	}
	if args[0] == "" {
		return fmt.Errorf("the project key must not be empty")
	}
	return nil
}
