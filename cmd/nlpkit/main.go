package main

import "nlpkit/internal/cli"

func main() {
	cli.Execute()
}
