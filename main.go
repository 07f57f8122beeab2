package main

import "github.com/revivehq/release-notes/cmd"

func main() {
	cmd.Execute()
}
