package main

import "github.com/hance08/ledger/cmd"

func main() {
	cmd.Execute()
}
