package inputprocessor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"rulebot/internal/util"
)

const maxLineBytes = 1 << 20

// Result holds the messages read from one input.
type Result struct {
	Messages []string
	Source   string // "file" or "reader"
	FilePath string // absolute path when Source is "file"
}

// Processor turns a file or stream into a list of messages, one per line.
type Processor interface {
	ProcessFile(ctx context.Context, path string) (Result, error)
	ProcessReader(ctx context.Context, r io.Reader) (Result, error)
}

// New creates a default processor implementation.
func New() Processor {
	return &defaultProcessor{}
}

type defaultProcessor struct{}

// ProcessFile reads messages from a text file. Directories and binary files
// are rejected.
func (p *defaultProcessor) ProcessFile(ctx context.Context, path string) (Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Result{}, fmt.Errorf("permission denied reading file '%s': %w", path, err)
		}
		return Result{}, fmt.Errorf("failed to stat input '%s': %w", path, err)
	}
	if fi.IsDir() {
		return Result{}, fmt.Errorf("input '%s' is a directory, not a file", path)
	}

	binary, err := util.IsLikelyBinary(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	if binary {
		return Result{}, fmt.Errorf("input '%s' looks like a binary file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}
	defer f.Close()

	res, err := p.ProcessReader(ctx, f)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	absPath, pathErr := filepath.Abs(path)
	if pathErr != nil {
		log.Warnf("Failed to get absolute path for '%s': %v. Using original path.", path, pathErr)
		absPath = path
	}
	res.Source = "file"
	res.FilePath = absPath
	log.WithFields(log.Fields{"path": absPath, "messages": len(res.Messages)}).Debug("read messages from file")
	return res, nil
}

// ProcessReader reads one message per line, skipping blank lines. It stops
// early if ctx is cancelled.
func (p *defaultProcessor) ProcessReader(ctx context.Context, r io.Reader) (Result, error) {
	res := Result{Source: "reader"}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		line := scanner.Text()
		if util.IsBlank(line) {
			continue
		}
		res.Messages = append(res.Messages, line)
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// Ensure defaultProcessor satisfies the Processor interface.
var _ Processor = (*defaultProcessor)(nil)
