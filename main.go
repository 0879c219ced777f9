package main

import "github.com/notargets/fvweno/cmd"

func main() {
	cmd.Execute()
}
