package main

import "github.com/kingmaker-labs/kingmaker-go/cmd"

func main() {
	cmd.Execute()
}
