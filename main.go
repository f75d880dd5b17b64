package main

import "github.com/jclemens/inkplot/cmd"

func main() {
	cmd.Execute()
}
