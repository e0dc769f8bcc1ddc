package main

import "wordle-web/cmd"

func main() {
	cmd.Execute()
}
