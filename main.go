package main

import (
	"fmt"
	"os"

	"github.com/jsredmond/zork1-sub000/internal/content"
	"github.com/jsredmond/zork1-sub000/internal/engine"
	"github.com/jsredmond/zork1-sub000/internal/tui"
)

func main() {
	w, tab, err := content.LoadDefault()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	sess := engine.NewSession(w, tab, nil)
	if err := tui.Run(sess, ".saves"); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
