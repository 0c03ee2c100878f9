package cli

import (
	"fmt"
	"time"

	"github.com/lcabreja/psiq/internal/constants"
)

type ReportTasksCmd struct {
	Patient int    `arg:"" help:"Patient id."`
	From    string `help:"Range start (YYYY-MM-DD). Defaults to 30 days ago."`
	To      string `help:"Range end (YYYY-MM-DD). Defaults to today."`
}

func (c *ReportTasksCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	if c.To == "" {
		c.To = time.Now().Format(constants.DateFormat)
	}
	if c.From == "" {
		c.From = time.Now().AddDate(0, 0, -30).Format(constants.DateFormat)
	}
	for _, d := range []string{c.From, c.To} {
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid date %q, use YYYY-MM-DD", d)
		}
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	report, err := ctx.Client.TaskCompletion(reqCtx, c.Patient, c.From, c.To)
	if err != nil {
		return err
	}

	fmt.Printf("Task completion %s to %s\n", c.From, c.To)
	fmt.Printf("Completed: %d\n", report.Completed)
	fmt.Printf("Pending:   %d\n", report.Pending)
	return nil
}

type ReportFlashcardsCmd struct {
	Patient int `arg:"" help:"Patient id."`
}

func (c *ReportFlashcardsCmd) Run(ctx *Context) error {
	if err := ctx.RequireSession(); err != nil {
		return err
	}

	reqCtx, cancel := requestContext()
	defer cancel()

	report, err := ctx.Client.FlashcardProgression(reqCtx, c.Patient)
	if err != nil {
		return err
	}

	fmt.Println("Flashcard progression")
	fmt.Printf("Reviewed:  %d\n", report.Reviewed)
	fmt.Printf("Remaining: %d\n", report.Remaining)
	return nil
}
