package main

import "github.com/gnames/wcvp/cmd"

func main() {
	cmd.Execute()
}
