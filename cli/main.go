package main

import "github.com/queryfilter-go/queryfilter/cli/cmd"

func main() {
	cmd.Execute()
}
