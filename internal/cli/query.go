package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyprwire/hyprwire/ctl"
	"github.com/hyprwire/hyprwire/internal/ui"
)

var queryJSON bool

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run data queries against the command socket",
}

func init() {
	queryCmd.PersistentFlags().BoolVar(&queryJSON, "json", false, "print raw JSON")
	queryCmd.AddCommand(queryMonitorsCmd)
	queryCmd.AddCommand(queryWorkspacesCmd)
	queryCmd.AddCommand(queryClientsCmd)
	queryCmd.AddCommand(queryActiveWindowCmd)
	queryCmd.AddCommand(queryVersionCmd)
}

func commandClient() (*ctl.Client, error) {
	inst, err := currentInstance()
	if err != nil {
		return nil, err
	}
	return ctl.NewWithTimeout(inst, commandTimeout()), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var queryMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected monitors",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		monitors, err := client.Monitors(context.Background())
		if err != nil {
			return err
		}
		if queryJSON {
			return printJSON(monitors)
		}
		for _, m := range monitors {
			focus := " "
			if m.Focused {
				focus = ui.SuccessStyle.Render("*")
			}
			fmt.Printf("%s %s %dx%d@%.2fHz at %d,%d workspace %s\n",
				focus, ui.TitleStyle.Render(m.Name), m.Width, m.Height,
				m.RefreshRate, m.X, m.Y, m.ActiveWorkspace.Name)
		}
		return nil
	},
}

var queryWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		workspaces, err := client.Workspaces(context.Background())
		if err != nil {
			return err
		}
		if queryJSON {
			return printJSON(workspaces)
		}
		for _, w := range workspaces {
			fmt.Printf("%s on %s: %d windows\n",
				ui.TitleStyle.Render(w.Name), w.Monitor, w.Windows)
		}
		return nil
	},
}

var queryClientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List mapped windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		windows, err := client.Clients(context.Background())
		if err != nil {
			return err
		}
		if queryJSON {
			return printJSON(windows)
		}
		for _, w := range windows {
			fmt.Printf("%s %s %q on %s\n",
				ui.MutedStyle.Render(w.Address),
				ui.TitleStyle.Render(w.Class), w.Title, w.Workspace.Name)
		}
		return nil
	},
}

var queryActiveWindowCmd = &cobra.Command{
	Use:   "activewindow",
	Short: "Show the focused window",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		w, err := client.ActiveWindow(context.Background())
		if err != nil {
			return err
		}
		if queryJSON {
			return printJSON(w)
		}
		if w == nil {
			fmt.Println(ui.MutedStyle.Render("no focused window"))
			return nil
		}
		fmt.Printf("%s %s %q on %s\n",
			ui.MutedStyle.Render(w.Address),
			ui.TitleStyle.Render(w.Class), w.Title, w.Workspace.Name)
		return nil
	},
}

var queryVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show compositor version",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		v, err := client.Version(context.Background())
		if err != nil {
			return err
		}
		if queryJSON {
			return printJSON(v)
		}
		fmt.Printf("%s (%s) %s\n", v.Tag, v.Branch, v.Commit)
		return nil
	},
}
