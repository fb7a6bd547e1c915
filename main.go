package main

import "github.com/rpgo/pac-simulator/cmd"

func main() {
	cmd.Execute()
}
