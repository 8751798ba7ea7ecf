package main

import "neo-explorer/cmd"

func main() {
	cmd.Execute()
}
