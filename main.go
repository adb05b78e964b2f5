package main

import "github.com/kamusis/medref/cmd"

func main() {
	cmd.Execute()
}
