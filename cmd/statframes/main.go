package main

import "github.com/nfrund/statframes/cmd/statframes/cmd"

func main() {
	cmd.Execute()
}
