package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
)

// prompter reads answers from the command's stdin. Passwords are read
// without echo when stdin is a terminal.
type prompter struct {
	out    io.Writer
	in     io.Reader
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		out:    cmd.ErrOrStderr(),
		in:     cmd.InOrStdin(),
		reader: bufio.NewReader(cmd.InOrStdin()),
	}
}

func (p *prompter) line(label string) (string, error) {
	_, _ = io.WriteString(p.out, label)

	answer, err := p.reader.ReadString('\n')
	if err != nil && answer == "" {
		return "", fmt.Errorf("failed to read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}

	return strings.TrimSpace(answer), nil
}

func (p *prompter) password(label string) (string, error) {
	file, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return p.line(label)
	}

	_, _ = io.WriteString(p.out, label)

	bytePassword, err := term.ReadPassword(int(file.Fd()))

	_, _ = io.WriteString(p.out, "\n")

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(bytePassword), nil
}

// promptNewPassword asks for a password twice.
func promptNewPassword(cmd *cobra.Command) (string, error) {
	p := newPrompter(cmd)

	password, err := p.password("Password: ")
	if err != nil {
		return "", err
	}

	if password == "" {
		return "", constants.ErrEmptyPassword
	}

	again, err := p.password("Confirm password: ")
	if err != nil {
		return "", err
	}

	if again != password {
		return "", constants.ErrPasswordMismatch
	}

	return password, nil
}
