package main

import "github.com/yuya-isaka/bisection/cli"

func main() {
	cli.Execute()
}
