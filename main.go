package main

import "github.com/makeabilitylab/gallery/cmd"

func main() {
	cmd.Execute()
}
