package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Reset all settings? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	var response string

	_, _ = fmt.Fscanln(in, &response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// boxWidth is the standard width for info boxes
const boxWidth = 48

// printInfoBox prints a framed box with title and key-value pairs in order
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	rule := strings.Repeat("═", boxWidth-2)

	_, _ = fmt.Fprintf(w, "╔%s╗\n", rule)
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintf(w, "╠%s╣\n", rule)

	for _, key := range order {
		val, ok := items[key]
		if !ok {
			continue
		}

		content := fmt.Sprintf("  %s: %s", key, val)

		padding := boxWidth - 2 - len(content)
		if padding < 0 {
			padding = 0
			content = content[:boxWidth-2]
		}

		_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
	}

	_, _ = fmt.Fprintf(w, "╚%s╝\n", rule)
}
