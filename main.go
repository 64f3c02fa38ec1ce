package main

import "github.com/focusflow/focusflow/cmd"

func main() {
	cmd.Execute()
}
