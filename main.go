package main

import "github.com/runningstream/RestoreElasticSearchSnapshots/cmd"

func main() {
	cmd.Execute()
}
