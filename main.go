package main

import "github.com/relloyd/tdch/cmd"

func main() {
	cmd.Execute()
}
