package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests so they never touch a terminal.
var readPassword = term.ReadPassword

func promptLine(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

type adminInput struct {
	Name     string
	Email    string
	Password string
}

func promptAdmin(reader *bufio.Reader, w io.Writer) (adminInput, error) {
	var in adminInput
	var err error

	if in.Name, err = promptLine(reader, w, "Name"); err != nil {
		return adminInput{}, err
	}
	if in.Email, err = promptLine(reader, w, "Email"); err != nil {
		return adminInput{}, err
	}
	if in.Password, err = promptPassword(w); err != nil {
		return adminInput{}, err
	}
	return in, nil
}
