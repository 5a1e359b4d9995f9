package main

import "github.com/d3ku010/macroo/cmd/macroo"

func main() {
	macroo.Execute()
}
