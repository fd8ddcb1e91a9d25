// Package scanner discovers resource files and guide directories under the
// configured roots.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/starford/mokares/internal/apperr"
)

// File is one discovered markdown file.
type File struct {
	Path    string // slash separated, as reached from the scanned root
	Content string
}

// ignoredDirs are version-control bookkeeping directories.
var ignoredDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
	".bzr": {},
}

var errEmptyRoot = errors.New("empty root path")

// Scanner walks a file system. Relative roots resolve inside fsys; absolute
// roots and relative roots leaving fsys (../content) are opened directly
// from the operating system, the latter against baseDir.
type Scanner struct {
	fsys    fs.FS
	baseDir string
	logger  *slog.Logger
	workers int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for skipped entries.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBaseDir sets the operating system directory fsys is rooted at. It
// resolves relative roots that climb out of fsys. The default is the
// process working directory.
func WithBaseDir(dir string) Option {
	return func(s *Scanner) {
		s.baseDir = dir
	}
}

// WithWorkers bounds the number of concurrent file reads.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New creates a Scanner over fsys.
func New(fsys fs.FS, opts ...Option) *Scanner {
	s := &Scanner{
		fsys:    fsys,
		logger:  slog.New(slog.DiscardHandler),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Files returns every regular file with a .md extension below root, in
// lexical walk order. An unreadable root is fatal; unreadable
// subdirectories are logged and skipped. Contents are read concurrently but
// each result keeps its walk position.
func (s *Scanner) Files(ctx context.Context, root string) ([]File, error) {
	fsys, dir, display, err := s.resolve(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == dir {
				return walkErr
			}
			s.logger.Warn("scanner: skipping unreadable entry",
				slog.String("path", display(p)),
				slog.String("error", walkErr.Error()))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(d.Name()) {
			return nil
		}
		if !s.isRegular(fsys, p, d) {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, apperr.NewIO("walk", root, err)
	}

	out := make([]File, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return apperr.NewIO("read", display(p), err)
			}
			out[i] = File{Path: display(p), Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("scanner: files collected", slog.String("root", root), slog.Int("count", len(out)))
	return out, nil
}

// ChildDirNames lists the immediate subdirectories of root, skipping
// version-control directories, in directory listing order.
func (s *Scanner) ChildDirNames(root string) ([]string, error) {
	fsys, dir, _, err := s.resolve(root)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, apperr.NewIO("read dir", root, err)
	}

	var names []string
	for _, e := range entries {
		if _, skip := ignoredDirs[e.Name()]; skip {
			continue
		}
		isDir := e.IsDir()
		if !isDir && e.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(fsys, path.Join(dir, e.Name()))
			isDir = err == nil && info.IsDir()
		}
		if isDir {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// resolve maps root onto a file system, the directory to open inside it,
// and the function that turns walked paths back into displayed paths.
func (s *Scanner) resolve(root string) (fs.FS, string, func(string) string, error) {
	if root == "" {
		return nil, "", nil, apperr.NewIO("open", root, errEmptyRoot)
	}
	if filepath.IsAbs(root) {
		base := filepath.Clean(root)
		return os.DirFS(base), ".", func(p string) string {
			return filepath.ToSlash(filepath.Join(base, filepath.FromSlash(p)))
		}, nil
	}
	dir := path.Clean(filepath.ToSlash(root))
	if !fs.ValidPath(dir) {
		base := filepath.Join(s.baseDir, filepath.FromSlash(dir))
		return os.DirFS(base), ".", func(p string) string {
			return path.Join(dir, p)
		}, nil
	}
	return s.fsys, dir, func(p string) string { return p }, nil
}

func (s *Scanner) isRegular(fsys fs.FS, p string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && info.Mode().IsRegular()
}

// isMarkdown matches names whose extension is exactly ".md". A bare ".md"
// is a hidden file without an extension.
func isMarkdown(name string) bool {
	return name != ".md" && path.Ext(name) == ".md"
}
