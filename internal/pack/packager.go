// Package pack builds the distributable ZIP archive of a skill directory.
package pack

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/wallacegibbon/skillkit/internal/bundle"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/logging"
	"github.com/wallacegibbon/skillkit/internal/skills"
)

// PlaceholderName names the archive when the manifest declares no name
const PlaceholderName = "unknown"

// ErrNoOutput is returned when the output path cannot hold an archive file
var ErrNoOutput = errors.New("invalid output path")

// Entries carry a fixed timestamp so identical inputs give identical archives.
var deterministicTimestamp = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options configures a packaging run
type Options struct {
	SkillDir   string
	OutputPath string
	Schema     *bundle.Schema
	Logger     *slog.Logger
}

// Result describes a written archive
type Result struct {
	Path  string
	Size  int64
	Files []string
}

type sourceFile struct {
	abs  string
	rel  string
	mode fs.FileMode
}

// Package writes the allow-listed files of opts.SkillDir into a ZIP archive.
// The archive is staged in a temporary file and only renamed into place once
// complete, so a failed run never leaves a partial archive behind.
func Package(opts Options) (*Result, error) {
	schema := opts.Schema
	if schema == nil {
		schema = bundle.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	info, err := os.Stat(opts.SkillDir)
	if err != nil {
		return nil, fmt.Errorf("skill directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("skill directory: %s is not a directory", opts.SkillDir)
	}

	skill, err := skills.LoadManifest(opts.SkillDir, schema.PathFor(bundle.RoleManifest))
	if err != nil {
		return nil, err
	}

	name := skill.NameOr(PlaceholderName)
	if err := skill.Frontmatter.Err(); err != nil {
		log.Warn("using placeholder name", "reason", err, "name", name)
	}
	// The default archive lives in the working directory, so the name must
	// be a single path element.
	if !isPlainName(name) {
		log.Warn("using placeholder name", "reason", "name is not a plain file name", "name", name)
		name = PlaceholderName
	}

	output := opts.OutputPath
	if output == "" {
		output = DefaultOutputName(name)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNoOutput, output)
	}

	files, err := collect(opts.SkillDir, output, schema, log)
	if err != nil {
		return nil, err
	}

	if err := writeArchive(output, files); err != nil {
		return nil, err
	}

	info, err = os.Stat(output)
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}
	log.Info("archive written", "path", output, "files", len(files), "bytes", info.Size())

	rels := make([]string, len(files))
	for i, f := range files {
		rels[i] = f.rel
	}
	return &Result{Path: output, Size: info.Size(), Files: rels}, nil
}

// DefaultOutputName returns the archive file name used when no output path is given
func DefaultOutputName(name string) string {
	return fmt.Sprintf("%s_%s.zip", name, config.ReleaseTag)
}

func isPlainName(name string) bool {
	return name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// collect walks root in lexical order and returns the files the schema admits
func collect(root, output string, schema *bundle.Schema, log *slog.Logger) ([]sourceFile, error) {
	outputAbs, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}

	var files []sourceFile
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if p == root {
			return err
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		// Directories nothing could be included from are never read, so an
		// unreadable one outside the allow-list cannot fail the walk.
		if d != nil && d.IsDir() {
			if !schema.MayInclude(rel + "/") {
				log.Debug("skipping directory", "path", rel)
				return fs.SkipDir
			}
			return err
		}
		if err != nil {
			return err
		}

		if !schema.Includes(rel) {
			log.Debug("skipping file", "path", rel)
			return nil
		}

		// Follow symlinks; anything that is not a regular file is skipped.
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			log.Debug("skipping non-regular file", "path", rel, "mode", info.Mode())
			return nil
		}

		if abs, err := filepath.Abs(p); err == nil && abs == outputAbs {
			return nil
		}

		log.Debug("adding file", "path", rel)
		files = append(files, sourceFile{abs: p, rel: rel, mode: info.Mode().Perm()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func writeArchive(output string, files []sourceFile) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for _, f := range files {
		if err = addFile(zw, f); err != nil {
			zw.Close()
			return err
		}
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	// CreateTemp uses 0600; archives are meant to be shared.
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod archive: %w", err)
	}
	if err = os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("move archive into place: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, f sourceFile) error {
	src, err := os.Open(f.abs)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.rel, err)
	}
	defer src.Close()

	header := &zip.FileHeader{
		Name:     f.rel,
		Method:   zip.Deflate,
		Modified: deterministicTimestamp,
	}
	header.SetMode(f.mode)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("add %s: %w", f.rel, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write %s: %w", f.rel, err)
	}
	return nil
}
