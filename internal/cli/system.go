package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-ps"

	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/keyring"
	"github.com/lcabreja/psiq/internal/tui"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s\n", ctx.Store.GetConfigPath())
	return nil
}

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return fmt.Errorf("not signed in, run 'psiq login' first")
	}

	p := tea.NewProgram(tui.NewModel(ctx.Client, ctx.Store, ctx.Session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: settings store reachable
	if _, err := ctx.Store.GetSettings(); err != nil {
		fmt.Printf("❌ Settings store: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Settings store: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: keyring available
	if !keyring.IsAvailable() {
		fmt.Printf("⚠ Keyring: WARNING\n")
		fmt.Printf("   OS keyring not usable, sessions will not survive restarts\n")
	} else {
		fmt.Printf("✓ Keyring: OK\n")
	}

	// Check 3: session state
	if ctx.Session.SignedIn() {
		fmt.Printf("✓ Session: signed in as %s (%s)\n", ctx.Session.Email, ctx.Session.Role)
	} else {
		fmt.Printf("⊘ Session: signed out\n")
	}

	// Check 4: backend reachable
	if err := checkBackendReachable(ctx.Client.BaseURL()); err != nil {
		fmt.Printf("❌ Backend reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", ctx.Client.BaseURL())
	}

	// Check 5: duplicate instances
	count, err := countRunningInstances()
	switch {
	case err != nil:
		fmt.Printf("⊘ Duplicate instances: SKIPPED (%v)\n", err)
	case count > 1:
		fmt.Printf("⚠ Duplicate instances: WARNING\n")
		fmt.Printf("   %d %s processes running\n", count, constants.AppName)
	default:
		fmt.Printf("✓ Duplicate instances: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkBackendReachable only verifies the host answers; any HTTP status
// counts as reachable.
func checkBackendReachable(baseURL string) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func countRunningInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range procs {
		if p.Executable() == constants.AppName {
			count++
		}
	}
	return count, nil
}
