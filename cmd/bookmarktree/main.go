package main

import "github.com/dastanaron/bookmarktree/cmd/bookmarktree/cmd"

func main() {
	cmd.Execute()
}
