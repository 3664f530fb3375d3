package sizewise

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultProgressInterval is the default minimum delay between progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Errors for the initial lookup of the scan target. Everything that goes
// wrong past that point is absorbed into Stats counters instead of raised.
var (
	// ErrTargetNotFound indicates the target path does not exist. The
	// underlying lookup error stays in the wrap chain.
	ErrTargetNotFound = errors.New("target not found")

	// ErrInvalidTargetType indicates the target exists but is neither a file,
	// a directory, nor a symbolic link.
	ErrInvalidTargetType = errors.New("not a file or directory")
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Options configures a scan and the CLI behavior around it.
type Options struct {
	// Path is the file or directory to scan.
	Path string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// Mode selects the recommendation variant (storage or workers).
	Mode string
	// Output represents output format (table, json or yaml).
	Output string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// Scan analyzes the tree rooted at opt.Path and returns aggregated statistics.
//
// The root may be a regular file, a directory, or a symbolic link (which is
// skipped, like every other symlink, and yields zeroed stats). Directories
// are traversed depth-first with an explicit stack, one filesystem call at a
// time; unreadable directories and files are counted and skipped, never
// raised. Only the initial lookup of the root can fail the scan, with
// ErrTargetNotFound or ErrInvalidTargetType.
//
// Progress updates are sent to progressHook, if provided, from inside the
// traversal loop, at most one per opt.ProgressInterval.
func Scan(ctx context.Context, opt Options, progressHook func(files, bytes int64)) (*Stats, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	excludes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludes = append(excludes, re)
	}

	log.printf("[debug]: exclude regexes:\n")

	for _, re := range excludes {
		log.printf("[debug]:   - %s\n", re.String())
	}

	// Lstat so a symlink root is seen as a symlink, not its target.
	info, err := os.Lstat(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("accessing target %q: %w: %w", opt.Path, ErrTargetNotFound, err)
	}

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	start := time.Now()
	acc := &accumulator{}

	switch mode := info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		log.printf("[debug]: root is a symlink, skipping: %s\n", opt.Path)

		acc.stats.SkippedSymlinks++
	case mode.IsRegular():
		acc.addFile(opt.Path, info.Size())
	case mode.IsDir():
		if err := walkDirs(ctx, acc, opt.Path, excludes, log, progressHook, interval); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("target %q: %w", opt.Path, ErrInvalidTargetType)
	}

	stats := acc.finalize()

	stats.Elapsed = time.Since(start)

	return stats, nil
}

// walkDirs drains an explicit LIFO stack of pending directories, folding
// every regular file into acc. Filesystem errors below the root only bump
// counters; the sole error it can return is the context's, checked once per
// directory.
func walkDirs(
	ctx context.Context,
	acc *accumulator,
	root string,
	excludes []*regexp.Regexp,
	log logger,
	progressHook func(files, bytes int64),
	interval time.Duration,
) error {
	stack := []string{root}
	lastProgress := time.Now()

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		acc.stats.DirCount++

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.printf("[debug]: error listing directory %s: %v\n", dir, err)

			acc.stats.UnreadableEntries++

			continue // Skip the whole subtree
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.Type()&fs.ModeSymlink != 0 {
				log.printf("[debug]: skipping symlink: %s\n", path)

				acc.stats.SkippedSymlinks++

				continue
			}

			if matched := shouldExcludeByPattern(path, excludes); matched != nil {
				log.printf("[debug]: excluding: %s\n", filepath.ToSlash(path))
				log.printf("	 matched regex: %s\n", matched.String())

				continue
			}

			switch {
			case entry.IsDir():
				stack = append(stack, path)
			case entry.Type().IsRegular():
				info, err := entry.Info()
				if err != nil {
					log.printf("[debug]: error reading info for %s: %v\n", path, err)

					acc.stats.UnreadableEntries++

					continue
				}

				acc.addFile(path, info.Size())

				if progressHook != nil && time.Since(lastProgress) >= interval {
					progressHook(acc.stats.FileCount, acc.stats.TotalBytes)

					lastProgress = time.Now()
				}
			default:
				// Sockets, devices and other special entries carry no size
				// worth counting; they stay out of every total.
				log.printf("[debug]: ignoring special entry: %s\n", path)
			}
		}
	}

	return nil
}
