package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hyprwire/hyprwire/event"
	"github.com/hyprwire/hyprwire/internal/config"
	"github.com/hyprwire/hyprwire/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Full-screen live view of the event stream",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	inst, err := currentInstance()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, conn, err := inst.Events(ctx, event.WithBufferSize(config.Get().Events.BufferSize))
	if err != nil {
		return err
	}
	defer conn.Close()

	model := ui.NewWatchModel(inst.Signature())
	program := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		stream := client.Stream()
		for stream.Next(ctx) {
			program.Send(ui.EventMsg{Event: stream.Event()})
		}
		err := stream.Err()
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		program.Send(ui.StreamClosedMsg{Err: err})
	}()

	if _, err := program.Run(); err != nil {
		return err
	}
	cancel()
	return model.Err()
}
