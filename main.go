package main

import "rulebot/cmd"

func main() {
	cmd.Execute()
}
