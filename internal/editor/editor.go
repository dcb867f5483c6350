// Package editor collects free-form chunk input by dropping the user into
// their text editor, the same way git collects commit messages.
package editor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// Collect writes the template to a temporary file, runs the configured editor
// on it, and returns the edited content. An unchanged or emptied buffer means
// the user cancelled; Collect reports that as ok=false, not as an error.
func Collect(ctx context.Context, editorCmd, template string) (content string, ok bool, err error) {
	f, err := os.CreateTemp("", "pla-split-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("failed to create editor buffer: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(template); err != nil {
		f.Close()
		return "", false, fmt.Errorf("failed to write editor buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", false, fmt.Errorf("failed to close editor buffer: %w", err)
	}

	cmd := exec.CommandContext(ctx, editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor %q failed: %w", editorCmd, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read editor buffer: %w", err)
	}

	if string(edited) == template || len(bytes.TrimSpace(edited)) == 0 {
		return "", false, nil
	}
	return string(edited), true, nil
}

// ParseChunks parses the edited buffer into chunk inputs. Each non-empty line
// is "<amount> <description>"; lines starting with # are comments.
func ParseChunks(content string) ([]dto.ChunkInput, error) {
	var chunks []dto.ChunkInput
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		amountStr, description, found := strings.Cut(line, " ")
		if !found || strings.TrimSpace(description) == "" {
			return nil, fmt.Errorf("line %d: expected \"<amount> <description>\", got %q", i+1, line)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: malformed amount %q: %w", i+1, amountStr, err)
		}

		chunks = append(chunks, dto.ChunkInput{
			Amount:      amount,
			Description: strings.TrimSpace(description),
		})
	}
	return chunks, nil
}

// SplitTemplate renders the initial editor buffer for splitting a transaction.
func SplitTemplate(description string, amount decimal.Decimal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Splitting: %s (%s)\n", description, amount.StringFixed(2))
	b.WriteString("# One chunk per line: <amount> <description>\n")
	b.WriteString("# Chunk amounts must sum to the amount above.\n")
	b.WriteString("# Save an empty or unchanged buffer to cancel.\n")
	return b.String()
}
