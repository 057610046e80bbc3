// Package args contains helpers that massage raw CLI arguments and option
// maps before they reach the command tree.
package args

import (
	"os"

	"github.com/go-viper/mapstructure/v2"
)

// Commands that accept a trailing positional model path.
var modelCommands = map[string]bool{
	"run":         true,
	"test":        true,
	"shell":       true,
	"interactive": true,
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RewriteModelArgument reinterprets a bare trailing model path as the value
// of the --model flag and returns the rewritten argument list.
//
// The rewrite fires only when the invoked command is one of run, test, shell
// or interactive, the second-to-last token is not a flag, and the last token
// names an existing path. Anything else is returned unchanged; ambiguous
// invocations are left for the flag parser to reject.
func RewriteModelArgument(argv []string) []string {
	if len(argv) < 3 {
		return argv
	}
	if !modelCommands[argv[1]] {
		return argv
	}
	if len(argv[len(argv)-2]) > 0 && argv[len(argv)-2][0] == '-' {
		return argv
	}
	if !pathExists(argv[len(argv)-1]) {
		return argv
	}

	rewritten := make([]string, len(argv), len(argv)+1)
	copy(rewritten, argv)
	rewritten = append(rewritten, rewritten[len(rewritten)-1])
	rewritten[len(rewritten)-2] = "--model"
	return rewritten
}

// RewriteOSArgs applies RewriteModelArgument to os.Args. It must run once,
// before the command tree parses flags.
func RewriteOSArgs() {
	os.Args = RewriteModelArgument(os.Args)
}

// FilterOptions returns the subset of opts whose keys appear in accepted,
// with values unchanged.
func FilterOptions(opts map[string]any, accepted []string) map[string]any {
	acceptedSet := make(map[string]bool, len(accepted))
	for _, name := range accepted {
		acceptedSet[name] = true
	}

	filtered := make(map[string]any, len(opts))
	for k, v := range opts {
		if acceptedSet[k] {
			filtered[k] = v
		}
	}
	return filtered
}

// DecodeOptions decodes opts into the target struct, silently dropping keys
// the struct does not declare.
func DecodeOptions(opts map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(opts)
}
