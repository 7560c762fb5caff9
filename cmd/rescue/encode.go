package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tuchandra/rescue"
)

func init() {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "encode a record back into a password",
	}
	Root.AddCommand(cmd)
	fConf := cmd.Flags().StringP("record", "c", "rescue-record.json", "record file")
	fKeep := cmd.Flags().BoolP("keep-checksum", "k", false, "write the record's stored checksum byte verbatim")
	fInfo := cmd.Flags().BoolP("info", "i", false, "print a human-readable summary")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(*fConf)
		if os.IsNotExist(err) {
			cmd.SilenceUsage = true
			r := &rescue.RescueRecord{
				RecordBase: rescue.RecordBase{
					Timestamp: uint32(time.Now().Unix()),
				},
				Dungeon: 1,
				Floor:   1,
				Pokemon: 1,
			}
			data, err = rescue.MarshalRecord(r)
			if err != nil {
				return err
			}
			err = os.WriteFile(*fConf, data, 0644)
			if err != nil {
				return err
			}
			return errors.New("record file not found - generated a new one; please edit and re-run the command")
		}
		if err != nil {
			return err
		}
		rec, err := rescue.UnmarshalRecord(data)
		if err != nil {
			return err
		}

		cli, err := newCodec()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		text, err := cli.Encode(rec, *fKeep)
		if err != nil {
			return err
		}
		printPassword(text)

		if *fInfo {
			rec, _ = cli.Decode(text)
			fmt.Print(rescue.Describe(rec, cli.GameData()))
		}
		return nil
	}
}

// printPassword prints a password the way the game displays it:
// five-symbol groups, fifteen symbols per line.
func printPassword(text string) {
	for i := 0; i < len(text); i += 2 {
		fmt.Print(text[i : i+2])
		switch n := i/2 + 1; {
		case n%15 == 0:
			fmt.Println()
		case n%5 == 0:
			fmt.Print(" ")
		}
	}
}
