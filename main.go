package main

import "github.com/mj1618/magnify-cli/cmd"

func main() {
	cmd.Execute()
}
