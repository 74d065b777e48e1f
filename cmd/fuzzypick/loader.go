package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/darksworm/fuzzypick"
)

const batchSize = 256

// item is the payload of a demo entry: a file or a line of input
type item struct {
	Path string
	Line int
}

// entriesMsg carries a batch of loaded entries to the model
type entriesMsg []fuzzypick.Entry[item]

// loadDoneMsg is sent once the loader finished
type loadDoneMsg struct {
	err error
}

// batcher groups entries and hands full batches to send
type batcher struct {
	send  func(entriesMsg)
	batch entriesMsg
}

func (b *batcher) add(entry fuzzypick.Entry[item]) {
	b.batch = append(b.batch, entry)
	if len(b.batch) >= batchSize {
		b.flush()
	}
}

func (b *batcher) flush() {
	if len(b.batch) == 0 {
		return
	}
	b.send(b.batch)
	b.batch = nil
}

// loadLines turns every line of r into an entry whose payload is its
// 1-based line number
func loadLines(ctx context.Context, r io.Reader, send func(entriesMsg)) error {
	b := &batcher{send: send}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		b.add(fuzzypick.Entry[item]{
			String: strings.TrimRight(scanner.Text(), "\r"),
			Data:   item{Line: line},
		})
	}
	b.flush()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// loadDir turns every regular file under root into an entry showing its
// relative path. Hidden directories are skipped.
func loadDir(ctx context.Context, root string, send func(entriesMsg)) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	b := &batcher{send: send}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable directories are skipped, not fatal
			if d != nil && d.IsDir() && path != abs {
				return fs.SkipDir
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != abs && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		b.add(fuzzypick.Entry[item]{
			String: filepath.ToSlash(rel),
			Data:   item{Path: path},
		})
		return nil
	})
	b.flush()
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return nil
}
