package main

import "github.com/busrayesinn/eventra/cmd/ev/root"

func main() {
	root.Execute()
}
