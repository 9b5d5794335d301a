package main

import "github.com/pyrex41/docserve/cmd"

func main() {
	cmd.Execute()
}
