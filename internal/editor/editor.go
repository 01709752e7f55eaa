// Package editor opens files in the user's preferred terminal editor,
// blocking until the editor exits.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

func editorCmd() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return "vi"
}

// Open launches the editor on path with the terminal attached.
func Open(path string) error {
	editor := editorCmd()
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", editor, err)
	}
	return nil
}
