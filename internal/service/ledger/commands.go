package ledger

import (
	"context"
	"fmt"
)

// Command is one pending posting in an ordered correction list. Keeping
// the list explicit lets callers see exactly which postings landed before
// a failure and resume by re-running the producing operation.
type Command struct {
	Entry PostEntryInput
	// Capped marks a chargeback debit that was reduced to the employee's
	// available balance.
	Capped bool
}

// CommandResult captures the outcome of one command.
type CommandResult struct {
	Command Command
	Posted  *PostedEntry
	Err     error
}

// RunCommands executes commands sequentially through the poster. It stops
// at the first failure and returns the results gathered so far, including
// the failed one; everything already posted stays posted.
func RunCommands(ctx context.Context, p Poster, cmds []Command) ([]CommandResult, error) {
	results := make([]CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		posted, err := p.PostEntry(ctx, cmd.Entry)
		results = append(results, CommandResult{Command: cmd, Posted: posted, Err: err})
		if err != nil {
			return results, fmt.Errorf("post %s of %d cents for employee %s: %w",
				cmd.Entry.Type, cmd.Entry.AmountCents, cmd.Entry.EmployeeID, err)
		}
	}
	return results, nil
}
