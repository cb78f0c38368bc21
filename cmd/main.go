package main

import (
	cmd "github.com/kerbaras/gapcharts/cmd/gapcharts"
)

func main() {
	cmd.Execute()
}
