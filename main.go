package main

import "cutaudio/cmd"

func main() {
	cmd.Execute()
}
