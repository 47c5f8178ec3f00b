// Package identity captures the player's display name once at startup
package identity

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lixenwraith/simon/constants"
)

// maxNameLength keeps the title line readable
const maxNameLength = 24

// Prompt is the question shown before reading a name
const Prompt = "Enter your name: "

// Ask prompts once and returns the trimmed answer, or fallback on empty input or read error
func Ask(in io.Reader, out io.Writer, fallback string) string {
	if fallback == "" {
		fallback = constants.DefaultPlayerName
	}

	if out != nil {
		fmt.Fprint(out, Prompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}
	return Normalize(line, fallback)
}

// Normalize trims, strips control characters and caps the length of a name
func Normalize(name, fallback string) string {
	name = strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(name))

	if r := []rune(name); len(r) > maxNameLength {
		name = string(r[:maxNameLength])
	}
	if name == "" {
		return fallback
	}
	return name
}

// Resolve returns the configured name, prompting on an interactive stdin when none is set
func Resolve(configured string) string {
	if configured != "" {
		return Normalize(configured, constants.DefaultPlayerName)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return constants.DefaultPlayerName
	}
	return Ask(os.Stdin, os.Stdout, constants.DefaultPlayerName)
}
