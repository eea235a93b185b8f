/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/stegpng/cmd/stegpng/cmd"
)

func main() {
	cmd.Execute()
}
