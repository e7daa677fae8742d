/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "VinaLuck/cmd"

func main() {
	cmd.Execute()
}
