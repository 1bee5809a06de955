package main

import "github.com/homonoid/hyperlisp/cmd"

func main() {
	cmd.Execute()
}
