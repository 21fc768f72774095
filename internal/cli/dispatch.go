package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hyprwire/hyprwire/ctl"
	"github.com/hyprwire/hyprwire/internal/config"
)

var dispatchYes bool

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <dispatcher> [args...]",
	Short: "Forward a dispatcher to the compositor",
	Long: `Dispatch sends a dispatcher invocation over the command socket, e.g.

  hyprwirectl dispatch workspace 3
  hyprwirectl dispatch movetoworkspace special:scratch

Session-ending dispatchers ask for confirmation unless --yes is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDispatch,
}

func init() {
	dispatchCmd.Flags().BoolVarP(&dispatchYes, "yes", "y", false, "skip confirmation prompts")
}

func runDispatch(cmd *cobra.Command, args []string) error {
	if args[0] == "exit" && !dispatchYes {
		var confirm bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("End the compositor session?").
					Description("dispatch exit terminates Hyprland and every client on it").
					Value(&confirm),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	inst, err := currentInstance()
	if err != nil {
		return err
	}
	client := ctl.NewWithTimeout(inst, commandTimeout())
	if err := client.Dispatch(context.Background(), args...); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func commandTimeout() time.Duration {
	return time.Duration(config.Get().Commands.TimeoutMS) * time.Millisecond
}
