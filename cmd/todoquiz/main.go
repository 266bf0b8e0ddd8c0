package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
