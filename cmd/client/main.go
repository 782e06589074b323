package main

import "pingate/cmd/client/cmd"

func main() {
	cmd.Execute()
}
