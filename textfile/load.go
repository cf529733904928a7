package textfile

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/vector"
)

// Some constants for the loading goroutine
const (
	progressLines = 1000             // publish a Progress message every that many lines
	maxLineSize   = 1024 * 1024      // longest accepted input line, in bytes
	scanBufSize   = 64 * 1024        // initial scanner buffer
)

// Progress is the message type broadcast to subscribers while a file is
// being loaded.
type Progress struct {
	Lines int   // lines loaded so far
	Bytes int64 // bytes consumed so far, including line terminators
	Done  bool  // loading has finished
}

// Loading represents a text file in the process of being loaded. Clients
// may observe the progress of the load via Subscribe and collect the result
// with Wait.
type Loading struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster // broadcaster for load progress
	done chan struct{}
	vec  vector.Vector[string]
	err  error
}

// Load reads a file, which must be a text file, and returns its lines as a
// vector. Line terminators are not part of the elements.
func Load(name string) (vector.Vector[string], error) {
	loading, err := LoadAsync(name)
	if err != nil {
		return vector.Empty[string](), err
	}
	return loading.Wait()
}

// LoadAsync starts loading a file in the background. Opening of the file is
// always done synchronously, so a Loading returned without error refers to a
// readable regular file.
func LoadAsync(name string) (*Loading, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	loading := &Loading{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages while lines are loaded
		done: make(chan struct{}),
	}
	go loading.run()
	return loading, nil
}

// Subscribe returns a channel of progress messages for the load. The channel
// is closed when loading finishes or ctx is cancelled. Subscribing after the
// load has finished yields an immediately closed channel.
func (ld *Loading) Subscribe(ctx context.Context) <-chan Progress {
	out := make(chan Progress, 1)
	ch, ok := ld.cast.Sub(ctx, progressLines)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range ch {
			if p, isProgress := m.(Progress); isProgress {
				out <- p
			}
		}
	}()
	return out
}

// Wait blocks until loading has finished and returns the vector of lines.
// A partial vector is never returned: on read errors the error is non-nil
// and the vector is empty.
func (ld *Loading) Wait() (vector.Vector[string], error) {
	<-ld.done
	return ld.vec, ld.err
}

// run is the file loading goroutine.
func (ld *Loading) run() {
	defer close(ld.done)
	defer ld.cast.Close()
	defer ld.file.Close()
	tracer().Debugf("loading text file %s (%d bytes)", ld.path, ld.info.Size())
	b := vector.NewBuilder[string]()
	scanner := bufio.NewScanner(ld.file)
	scanner.Buffer(make([]byte, 0, scanBufSize), maxLineSize)
	lines, bytes := 0, int64(0)
	for scanner.Scan() {
		if err := b.Append(scanner.Text()); err != nil {
			ld.err = err
			return
		}
		lines++
		bytes += int64(len(scanner.Bytes())) + 1 // line terminator counted as one byte
		if lines%progressLines == 0 {
			ld.cast.Pub(Progress{Lines: lines, Bytes: bytes})
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("error loading text file: %s", err.Error())
		ld.err = fmt.Errorf("error loading text file: %w", err)
		return
	}
	ld.vec = b.Vector()
	ld.cast.Pub(Progress{Lines: lines, Bytes: bytes, Done: true})
	tracer().Debugf("loaded %d lines from %s", lines, ld.path)
}
