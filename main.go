package main

import "github.com/lepinkainen/narou/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
