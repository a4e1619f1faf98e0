package main

import "github.com/tanq16/rws-scrape/cmd"

func main() {
	cmd.Execute()
}
