package main

import "codegap/cmd"

func main() {
	cmd.Execute()
}
