package main

import "github.com/tomsleight/crowdsync/cmd"

func main() {
	cmd.Execute()
}
