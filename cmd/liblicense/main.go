package main

import "github.com/liblicense/liblicense/cmd"

func main() {
	cmd.Execute()
}
