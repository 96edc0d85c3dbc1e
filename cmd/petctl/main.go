package main

import "pocketpet/cmd/petctl/root"

func main() {
	root.Execute()
}
