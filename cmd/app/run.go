package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	var phase, taskID string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Count down one phase in the terminal and log it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := timer.ParsePhase(phase)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, _, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			var task *models.Task
			if taskID != "" {
				t, err := db.GetTask(ctx, taskID)
				if err != nil {
					return err
				}
				task = &t
			}
			settings, err := db.LoadSettings(ctx)
			util.LogError("Load settings", err)

			player := notify.NewPlayer(os.Stdout)
			rec, err := runPhase(ctx, cmd.OutOrStdout(), p, task, settings, player, timer.SystemClock)
			if err != nil {
				return err
			}
			player.Wait(2 * time.Second)
			if _, err := db.RecordSession(ctx, rec); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&phase, "phase", "work", "phase to run: work or break")
	cmd.Flags().StringVar(&taskID, "task", "", "id of the task to credit the session to")
	return cmd
}

// runPhase counts p down on clock, redrawing the display on out, and returns
// the session to record once the phase completes.
func runPhase(ctx context.Context, out io.Writer, p timer.Phase, task *models.Task, settings models.Settings, n notify.Notifier, clock timer.Clock) (models.SessionRecord, error) {
	finished := make(chan timer.PhaseCompleted, 1)
	r := timer.NewRunner(
		timer.WithClock(clock),
		timer.WithPhase(p),
		timer.OnTick(func(s timer.State) {
			left := s.SecondsRemaining
			if s.Phase != p {
				// The completing tick already reports the next phase.
				left = 0
			}
			fmt.Fprintf(out, "\r%s  %s ", p, timer.Format(left))
		}),
		timer.OnComplete(func(done timer.PhaseCompleted) {
			finished <- done
		}),
	)
	defer r.Stop()

	started := r.Now()
	fmt.Fprintf(out, "%s  %s ", p, timer.Format(p.Seconds()))
	r.Start()

	select {
	case <-ctx.Done():
		fmt.Fprintln(out)
		return models.SessionRecord{}, ctx.Err()
	case done := <-finished:
		fmt.Fprintln(out)
		n.Notify(settings, done)
		rec := models.SessionRecord{
			Kind:      done.Phase.String(),
			StartedAt: started,
			EndedAt:   r.Now(),
			Seconds:   done.Phase.Seconds(),
		}
		if task != nil && done.Phase == timer.PhaseWork {
			rec.TaskID = task.ID
			rec.TaskName = task.Name
			rec.Category = task.Category
		}
		return rec, nil
	}
}
