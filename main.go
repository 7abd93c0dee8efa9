// Package main is entrypoint for the application
package main

import (
	"avatar/cmd"
)

func main() {
	cmd.Run()
}
