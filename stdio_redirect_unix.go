//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fds 1 and 2 at path so runtime output such as panic
// traces lands in the file too.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, target := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(target.Fd())); err != nil {
			return fmt.Errorf("dup2 onto %s: %w", target.Name(), err)
		}
	}
	return nil
}
