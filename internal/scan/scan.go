// Package scan drives the corpus aggregation: 26 alphabetic shard
// directories in, one flat ordered record collection out.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/srdex/internal/extract"
	"github.com/dgallion1/srdex/internal/parser"
	"github.com/dgallion1/srdex/internal/spell"
)

// indexFile is the per-shard index, excluded from processing.
const indexFile = "index.md"

const shardLetters = "abcdefghijklmnopqrstuvwxyz"

// Scanner runs the per-document pipeline over every file of every shard.
type Scanner struct {
	root      string
	workers   int
	keepGoing bool
	log       *slog.Logger
}

func New(root string, workers int, keepGoing bool, log *slog.Logger) *Scanner {
	if workers <= 0 {
		workers = 8
	}
	return &Scanner{root: root, workers: workers, keepGoing: keepGoing, log: log}
}

type task struct {
	shard int // shard letter index, for output ordering
	file  int // position within the shard listing
	path  string
}

// Run aggregates the whole corpus. Documents that fail Markdown parsing are
// logged and dropped; structural extraction failures abort the run unless
// keep-going mode is on, in which case they are all reported at the end.
// Output order is shards a to z, then the shard's filename-sorted listing.
func (s *Scanner) Run(ctx context.Context) ([]*spell.Record, error) {
	tasks, shardSizes, err := s.listTasks()
	if err != nil {
		return nil, err
	}

	results := make([][]*spell.Record, len(shardSizes))
	for i, n := range shardSizes {
		results[i] = make([]*spell.Record, n)
	}

	var mu sync.Mutex
	var structural []error

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := s.process(t.path)
			if err != nil {
				var serr *extract.StructuralError
				if s.keepGoing && errors.As(err, &serr) {
					s.log.Error("structural failure", "path", s.rel(t.path), "error", serr.Msg)
					mu.Lock()
					structural = append(structural, err)
					mu.Unlock()
					return nil
				}
				return err
			}
			if rec != nil {
				results[t.shard][t.file] = rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(structural) > 0 {
		return nil, fmt.Errorf("%d documents failed structural validation", len(structural))
	}

	var records []*spell.Record
	for _, shard := range results {
		for _, rec := range shard {
			if rec != nil {
				records = append(records, rec)
			}
		}
	}
	return records, nil
}

// process runs one document through parse, extract and normalize. A parse
// failure is soft: it is reported to the error sink and yields no record.
// A read failure indicates a traversal bug and is fatal.
func (s *Scanner) process(path string) (*spell.Record, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.rel(path), err)
	}

	doc, err := parser.Parse(src)
	if err != nil {
		s.log.Error("parse failed", "path", s.rel(path), "error", err)
		return nil, nil
	}

	rec, err := extract.Extract(doc, s.log)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", s.rel(path), err)
	}
	return rec, nil
}

// listTasks enumerates every document file, shard by shard. A missing shard
// directory is an empty shard, not an error.
func (s *Scanner) listTasks() ([]task, []int, error) {
	var tasks []task
	shardSizes := make([]int, len(shardLetters))

	for i, letter := range shardLetters {
		dir := filepath.Join(s.root, string(letter))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, nil, fmt.Errorf("list shard %c: %w", letter, err)
		}
		for _, e := range entries {
			if e.IsDir() || e.Name() == indexFile || !strings.HasSuffix(e.Name(), ".md") {
				continue
			}
			tasks = append(tasks, task{
				shard: i,
				file:  shardSizes[i],
				path:  filepath.Join(dir, e.Name()),
			})
			shardSizes[i]++
		}
	}
	return tasks, shardSizes, nil
}

func (s *Scanner) rel(path string) string {
	if r, err := filepath.Rel(s.root, path); err == nil {
		return r
	}
	return path
}
