package main

import "github.com/mohamedfarazalam/city-of-toronto-2024fs/cmd"

func main() {
	cmd.Execute()
}
