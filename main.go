package main

import (
	"jellygate/cmd"
)

func main() {
	cmd.Execute()
}
