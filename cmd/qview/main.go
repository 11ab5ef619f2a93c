package main

import "github.com/blacktop/qview/cmd/qview/cmd"

func main() {
	cmd.Execute()
}
