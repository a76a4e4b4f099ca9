package input

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// escapeCode reads the rest of an escape sequence and names it.
// A lone escape yields "escape".
func escapeCode() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '5', '6':
		// page up/down end with '~'
		if t, err := readByte(); err == nil && t == '~' {
			if b3 == '5' {
				return "page_up"
			}
			return "page_down"
		}
	}
	// Unknown escape sequence - discard it
	return ""
}

func codeOf(b byte) string {
	switch b {
	case '\r', '\n':
		return "enter"
	case '\t':
		return "tab"
	case 0x1b:
		return escapeCode()
	}
	if b >= 32 && b < 127 {
		return string(b)
	}
	return ""
}

// ReadKey puts the terminal into raw mode, waits for one key press and
// returns it as a raw input. Ctrl+C is reported as "q".
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	for {
		b, err := readByte()
		if err != nil {
			return RawInput{}, fmt.Errorf("cannot read stdin: %w", err)
		}
		code := codeOf(b)
		if b == 3 {
			code = "q"
		}
		if code != "" {
			return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
		}
	}
}
