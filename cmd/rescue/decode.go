package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tuchandra/rescue"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decode <password>",
		Short: "decode a 30-symbol password",
		Args:  cobra.ExactArgs(1),
	}
	Root.AddCommand(cmd)
	fInfo := cmd.Flags().BoolP("info", "i", false, "print a human-readable summary")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli, err := newCodec()
		if err != nil {
			return err
		}

		// Allow the password to be pasted with whitespace between groups.
		text := strings.Join(strings.Fields(args[0]), "")

		rec, err := cli.Decode(text)
		if rec == nil {
			return err
		}
		cmd.SilenceUsage = true
		if errors.Is(err, rescue.ErrChecksumMismatch) {
			fmt.Fprintln(os.Stderr, "WARNING:", err)
		}

		data, err := rescue.MarshalRecord(rec)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if *fInfo {
			fmt.Print(rescue.Describe(rec, cli.GameData()))
		}
		return nil
	}
}
