package main

import "github.com/haukened/rr-wire/cmd/rr-zonec/cmd"

func main() {
	cmd.Execute()
}
