package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/tui"
	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driving"
	"github.com/custodia-labs/wotr-save-editor/internal/core/services"
)

// reporter receives one progress event from a running pipeline.
type reporter func(ctx context.Context, percent int, description string) error

// runWithProgress runs work, rendering its progress as a bar or as plain
// lines depending on the configured mode and the output.
func runWithProgress(cmd *cobra.Command, title string, work func(context.Context, reporter) error) error {
	mode, err := progressMode()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	out := cmd.OutOrStdout()
	if !useBar(mode, out) {
		return work(ctx, plainReporter(out))
	}
	return runWithBar(ctx, cancel, out, title, work)
}

func runWithBar(
	ctx context.Context,
	cancel context.CancelFunc,
	out io.Writer,
	title string,
	work func(context.Context, reporter) error,
) error {
	updates := services.NewNotifications[tea.Msg]()

	app, err := tui.NewApp(title, updates.C())
	if err != nil {
		return err
	}
	app.WithCancel(cancel)

	errCh := make(chan error, 1)
	go func() {
		defer updates.Finish()
		err := work(ctx, func(ctx context.Context, percent int, description string) error {
			return updates.Send(ctx, messages.StageChanged{Percent: percent, Description: description})
		})
		// Nobody may be listening anymore.
		_ = updates.Send(ctx, messages.PipelineFinished{Err: err})
		errCh <- err
	}()

	runErr := runDisplay(ctx, app, out)
	updates.Close()
	workErr := <-errCh

	// A display that failed on its own closes the stream under the
	// pipeline, so its error is the cause worth reporting.
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("progress display: %w", runErr)
	}
	return workErr
}

// runDisplay runs the progress program until the pipeline finishes or the
// user cancels.
var runDisplay = func(ctx context.Context, app *tui.App, out io.Writer) error {
	return app.Run(tea.WithOutput(out), tea.WithContext(ctx))
}

func plainReporter(out io.Writer) reporter {
	return func(_ context.Context, percent int, description string) error {
		_, err := fmt.Fprintf(out, "[%3d%%] %s\n", percent, description)
		return err
	}
}

func progressMode() (domain.ProgressMode, error) {
	if progressFlag != "" {
		mode := domain.ProgressMode(progressFlag)
		if !mode.IsValid() {
			return "", fmt.Errorf("%w: progress mode %q", domain.ErrInvalidInput, progressFlag)
		}
		return mode, nil
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Progress, nil
		}
	}
	return domain.ProgressAuto, nil
}

func useBar(mode domain.ProgressMode, out io.Writer) bool {
	switch mode {
	case domain.ProgressBar:
		return true
	case domain.ProgressPlain:
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadObserver forwards load progress. The failure event is left to the
// returned error.
func loadObserver(report reporter) driving.LoadObserver {
	return func(ctx context.Context, p domain.LoadProgress) error {
		if p.Stage == domain.LoadFailed {
			return nil
		}
		return report(ctx, p.Percentage(), p.Description())
	}
}

func saveObserver(report reporter) driving.SaveObserver {
	return func(ctx context.Context, stage domain.SaveStage) error {
		return report(ctx, stage.Percentage(), stage.Description())
	}
}

// loadSave runs the load pipeline on path with progress.
func loadSave(cmd *cobra.Command, path string) (*domain.LoadResult, error) {
	var result *domain.LoadResult
	err := runWithProgress(cmd, "Loading "+path, func(ctx context.Context, report reporter) error {
		var err error
		result, err = saveLoader.Load(ctx, path, loadObserver(report))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return result, nil
}

// writeSave runs the save pipeline with progress.
func writeSave(cmd *cobra.Command, req driving.SaveRequest) (*domain.SaveResult, error) {
	var result *domain.SaveResult
	err := runWithProgress(cmd, "Saving "+req.ArchivePath, func(ctx context.Context, report reporter) error {
		var err error
		result, err = saveWriter.Save(ctx, req, saveObserver(report))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", req.ArchivePath, err)
	}
	return result, nil
}
