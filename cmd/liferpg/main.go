package main

import "github.com/mikecappella27/life-rpg/cmd/liferpg/root"

func main() {
	root.Execute()
}
