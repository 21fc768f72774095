package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Read or set config options at runtime",
}

func init() {
	keywordCmd.AddCommand(keywordGetCmd)
	keywordCmd.AddCommand(keywordSetCmd)
}

var keywordGetCmd = &cobra.Command{
	Use:   "get <option>",
	Short: "Read an option's current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		opt, err := client.GetOption(context.Background(), args[0])
		if err != nil {
			return err
		}
		switch {
		case opt.Str != "":
			fmt.Println(opt.Str)
		case opt.Float != 0:
			fmt.Println(opt.Float)
		default:
			fmt.Println(opt.Int)
		}
		return nil
	},
}

var keywordSetCmd = &cobra.Command{
	Use:   "set <option> <value>",
	Short: "Set an option",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		if err := client.Keyword(context.Background(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the compositor configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := commandClient()
		if err != nil {
			return err
		}
		if err := client.Reload(context.Background()); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}
