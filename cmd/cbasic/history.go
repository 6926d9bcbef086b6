package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nyaosorg/go-readline-ny"
	"github.com/nyaosorg/go-readline-ny/simplehistory"
)

// History is the line history the editor reads and the REPL appends to.
type History interface {
	readline.IHistory
	Add(string)
}

// persistentHistory keeps history in memory and mirrors every added line
// to a file, so sessions share history.
type persistentHistory struct {
	filename string
	history  *simplehistory.Container
}

// newHistory returns an in-memory history, backed by filename when it is
// non-empty. Previous sessions' lines are loaded up front.
func newHistory(filename string) (History, error) {
	hist := simplehistory.New()
	if filename == "" {
		return hist, nil
	}

	f, err := os.Open(filename)
	if err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			hist.Add(scanner.Text())
		}
		f.Close()
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read history %s: %w", filename, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open history %s: %w", filename, err)
	}

	return &persistentHistory{filename: filename, history: hist}, nil
}

func (p *persistentHistory) Len() int { return p.history.Len() }

func (p *persistentHistory) At(i int) string { return p.history.At(i) }

func (p *persistentHistory) Add(s string) {
	p.history.Add(s)
	f, err := os.OpenFile(p.filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.Error("failed to open history file", "file", p.filename, "err", err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, s); err != nil {
		log.Error("failed to write history file", "file", p.filename, "err", err)
	}
}
