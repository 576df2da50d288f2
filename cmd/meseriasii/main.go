package main

import "github.com/meseriasii/meseriasii/cmd/meseriasii/cmd"

func main() {
	cmd.Execute()
}
