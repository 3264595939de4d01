// pkg/core/consolidate.go
package core

// ConsolidateArgs joins the three argument segments in the order
// cmds, args, flags. The result never aliases the inputs.
func ConsolidateArgs(cmds, args, flags []string) []string {
	out := make([]string, 0, len(cmds)+len(args)+len(flags))
	out = append(out, cmds...)
	out = append(out, args...)
	out = append(out, flags...)
	return out
}

// Consolidate builds the final argument list for cmd from its table row:
// tokens, caller args, default flags, then caller extra flags.
// Commands that act on packages must receive at least one argument.
func Consolidate(cmd Cmd, row Row, args, extraFlags []string) ([]string, error) {
	if len(row.Tokens) == 0 {
		return nil, &UnsupportedError{Cmd: cmd}
	}
	if cmd.RequiresTargets() && len(args) == 0 {
		return nil, &ArgumentError{Cmd: cmd, Reason: "at least one target is required"}
	}
	for _, a := range args {
		if a == "" {
			return nil, &ArgumentError{Cmd: cmd, Reason: "empty argument"}
		}
	}

	flags := make([]string, 0, len(row.Flags)+len(extraFlags))
	flags = append(flags, row.Flags...)
	flags = append(flags, extraFlags...)

	return ConsolidateArgs(row.Tokens, args, flags), nil
}
