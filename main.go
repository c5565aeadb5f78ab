package main

import "github.com/tranvictor/addrbridge/cmd"

func main() {
	cmd.Execute()
}
