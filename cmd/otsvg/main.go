package main

import "github.com/OpenTraceLab/OpenTraceSVG/cmd/otsvg/cmd"

func main() {
	cmd.Execute()
}
