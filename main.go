package main

import "chessbot/cmd"

func main() {
	cmd.Execute()
}
