package main

import "marketloop/internal/cmd"

func main() {
	cmd.Run()
}
