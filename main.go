package main

import (
	cmd "github.com/mgharebaghi/cc-transaction/cmd/centichain"
)

func main() {
	cmd.Execute()
}
