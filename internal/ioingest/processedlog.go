package ioingest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// processedLog is the idempotence ledger: a plain-text file holding one
// absolute file path per line. A path present in the log is skipped
// unconditionally, even if the file content changed.
type processedLog struct {
	path  string
	seen  map[string]bool
	file  *os.File
	write *bufio.Writer
}

// openProcessedLog loads the log into memory and opens it for appending.
func openProcessedLog(path string) (*processedLog, error) {
	seen := make(map[string]bool)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, ProcessedLogError(path, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			seen[line] = true
		}
	}

	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, ProcessedLogError(path, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, ProcessedLogError(path, err)
	}

	return &processedLog{
		path:  path,
		seen:  seen,
		file:  file,
		write: bufio.NewWriter(file),
	}, nil
}

func (l *processedLog) contains(path string) bool {
	return l.seen[path]
}

// record appends a successfully ingested path. Flushes immediately:
// files completed before an interrupted batch must stay recorded.
func (l *processedLog) record(path string) error {
	if l.seen[path] {
		return nil
	}
	if _, err := l.write.WriteString(path + "\n"); err != nil {
		return ProcessedLogError(l.path, err)
	}
	if err := l.write.Flush(); err != nil {
		return ProcessedLogError(l.path, err)
	}
	l.seen[path] = true
	return nil
}

func (l *processedLog) close() error {
	if err := l.write.Flush(); err != nil {
		l.file.Close()
		return ProcessedLogError(l.path, err)
	}
	return l.file.Close()
}
