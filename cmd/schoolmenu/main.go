package main

import "schoolmenu/internal/cli"

func main() {
	cli.Execute()
}
