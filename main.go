package main

import "multivende-sync/cmd"

func main() {
	cmd.Execute()
}
