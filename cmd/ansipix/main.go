package main

import "github.com/blacktop/go-ansipix/cmd/ansipix/cmd"

func main() {
	cmd.Execute()
}
