package main

import "github.com/hmans/usergraph/cmd"

func main() {
	cmd.Execute()
}
