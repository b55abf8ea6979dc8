// Command dcg is a pre-execution guard for shell commands issued by AI
// coding agents: a PreToolUse hook classifies a Bash invocation before it
// runs and tells the host to allow, deny, or warn about it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
