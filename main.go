package main

import "github.com/mselser95/trading-results/cmd"

func main() {
	cmd.Execute()
}
