package main

import "github.com/khanhnv2901/crowdrisk/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
