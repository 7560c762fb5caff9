package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tuchandra/rescue"
)

var (
	Root = &cobra.Command{
		Use:   "rescue",
		Short: "PMD: Rescue Team DX password tools",
	}
	fRootData = Root.PersistentFlags().String("gamedata", "", "path to the gamedata.json lookup tables")
)

func newCodec() (*rescue.Codec, error) {
	if *fRootData == "" {
		return rescue.NewCodec(nil), nil
	}
	data, err := rescue.LoadGameData(*fRootData)
	if err != nil {
		return nil, err
	}
	return rescue.NewCodec(data), nil
}

func main() {
	if err := Root.Execute(); err != nil {
		os.Exit(1)
	}
}
