package main

import "github.com/Digital-Shane/scroll-tabs/internal/cmd"

func main() {
	cmd.Execute()
}
