package main

import "studyvault/cmd"

func main() {
	cmd.Execute()
}
