package main

import "github.com/CristiGvl/picoMemBar/cmd"

func main() {
	cmd.Execute()
}
