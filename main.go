package main

import "portkit/cmd"

func main() {
	cmd.Execute()
}
