package main

import "matchdate-backend/cmd"

func main() {
	cmd.Run()
}
