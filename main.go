package main

import "github.com/curaious/ttv/cmd"

func main() {
	cmd.Execute()
}
