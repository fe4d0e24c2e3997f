package main

import "github.com/budhip/go-fp-ledger/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
