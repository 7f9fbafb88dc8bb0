package main

import (
	"os"

	"witnet_addresses/cmd/witnet-addresses/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
