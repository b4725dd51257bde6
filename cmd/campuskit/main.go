package main

import "github.com/dchernov/campuskit/cmd/campuskit/cmd"

func main() {
	cmd.Execute()
}
