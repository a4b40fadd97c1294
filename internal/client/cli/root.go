package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.auth.CurrentUser(); user != nil {
		s = user.Name + " "
	}
	s = s + string(a.getMode())
	return fmt.Sprintf("(%s)", s)
}

// Root restores a persisted session, starts the connectivity watcher, and
// hands control to the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Alumni Portal CLI (type 'help' for commands)")

	if err := a.auth.Restore(ctx); err != nil {
		fmt.Fprintf(a.out, "Could not restore session: %v\n", err)
	}
	if user := a.auth.CurrentUser(); user != nil {
		fmt.Fprintf(a.out, "Logged in as %s.\n", user.Name)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
