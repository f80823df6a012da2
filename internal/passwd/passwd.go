// Package passwd reads a password from the terminal without echoing it,
// grounded on wqim-centi's util/getpasswd.go.
package passwd

import (
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// Prompt prints prompt to stdout and reads a password from stdin with
// echo disabled.
func Prompt(prompt string) (string, error) {
	fmt.Print(prompt)
	bytepw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(bytepw), nil
}
