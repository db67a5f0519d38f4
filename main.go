package main

import "github.com/kirimase/kirimase/cmd"

func main() {
	cmd.Execute()
}
