package main

import (
	"github.com/ThomasWaldinger/go-awp5/cmd"
)

func main() {
	cmd.Execute()
}
