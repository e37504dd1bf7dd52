package main

import (
	"songsearch/cmd"
)

func main() {
	cmd.Execute()
}
