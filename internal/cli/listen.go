package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hyprwire/hyprwire/event"
	"github.com/hyprwire/hyprwire/internal/config"
	"github.com/hyprwire/hyprwire/internal/logger"
	"github.com/hyprwire/hyprwire/internal/ui"
)

var listenKinds []string

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print compositor events as they arrive",
	Long: `Listen subscribes to the event socket and prints one line per decoded
event until interrupted. Use --kind to restrict output to specific event
kinds (wire names such as "workspace" or "openwindow").`,
	RunE: runListen,
}

func init() {
	listenCmd.Flags().StringSliceVar(&listenKinds, "kind", nil, "only print these event kinds")
}

func runListen(cmd *cobra.Command, args []string) error {
	inst, err := currentInstance()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()
	client, conn, err := inst.Events(ctx, event.WithBufferSize(cfg.Events.BufferSize))
	if err != nil {
		return err
	}
	defer conn.Close()

	print := event.HandlerFunc(func(ev event.Event) {
		fmt.Println(ui.FormatEvent(ev))
	})

	kinds := listenKinds
	if len(kinds) == 0 {
		kinds = cfg.Events.Kinds
	}
	if len(kinds) == 0 {
		client.SubscribeAll(print)
	} else {
		for _, k := range kinds {
			client.Subscribe(event.EventKind(k), print)
		}
	}

	logger.Debugf("listening on %s", inst.EventSocketPath())
	if err := client.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
