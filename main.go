package main

import "github.com/vx9/stemstation/cmd"

func main() {
	cmd.Execute()
}
