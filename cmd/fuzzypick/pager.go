package main

import (
	"fmt"

	"github.com/noborus/ov/oviewer"
)

// viewFile pages through path with ov
func viewFile(path string) error {
	root, err := oviewer.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	// Configure ov to not write on exit (to avoid messing with the shell)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
