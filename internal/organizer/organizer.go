package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"shelve/internal/category"
	"shelve/internal/faults"
	"shelve/internal/fileutil"
	"shelve/internal/logging"
	"shelve/internal/preflight"
	"shelve/internal/report"
)

// maxProbeAttempts bounds collision-suffix probing for a single file.
const maxProbeAttempts = 10000

// Organizer moves a directory's top-level files into category subfolders.
type Organizer struct {
	table  category.Table
	logger *slog.Logger
}

// New constructs an organizer for the given category table.
func New(table category.Table, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Organizer{
		table:  table,
		logger: logger.With(logging.String(logging.FieldComponent, "organizer")),
	}
}

// Organize runs one full pass over dir: validate, provision category folders,
// snapshot the top-level files, move each into its category, and return the
// per-category report. Per-file failures are recorded and skipped; only
// directory validation and folder provisioning abort the run.
func (o *Organizer) Organize(ctx context.Context, dir string) (*report.Report, error) {
	return o.run(ctx, dir, false)
}

// Preview computes the same report as Organize without creating folders or
// moving any file.
func (o *Organizer) Preview(ctx context.Context, dir string) (*report.Report, error) {
	return o.run(ctx, dir, true)
}

func (o *Organizer) run(ctx context.Context, dir string, dryRun bool) (*report.Report, error) {
	rep := report.New()
	rep.DryRun = dryRun

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.WithContext(ctx, o.logger).With(logging.String(logging.FieldDirectory, dir))

	if err := preflight.CheckDirectory(dir); err != nil {
		logger.Error("target directory failed validation", logging.Error(err))
		return rep, err
	}

	if !dryRun {
		if err := o.provision(dir, logger); err != nil {
			logger.Error("folder provisioning failed", logging.Error(err))
			return rep, err
		}
	}

	names, err := o.snapshot(dir)
	if err != nil {
		logger.Error("directory enumeration failed", logging.Error(err))
		return rep, err
	}
	if len(names) == 0 {
		logger.Info("no files to organize")
		return rep, nil
	}
	logger.Info("processing files", logging.Int("files", len(names)))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted; report is partial", logging.Error(err))
			return rep, err
		}
		o.processFile(dir, name, dryRun, rep, logger)
	}

	o.logSummary(rep, logger)
	return rep, nil
}

// provision ensures a destination folder exists for every category plus the
// fallback before any move is attempted. Any failure here is fatal for the
// run since subsequent moves depend on the folders.
func (o *Organizer) provision(dir string, logger *slog.Logger) error {
	names := o.table.Names()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			return faults.Wrap(faults.ErrProvision, "provision folders", fmt.Sprintf("create %s", path), err)
		}
	}
	logger.Debug("category folders ensured", logging.Int("folders", len(names)))
	return nil
}

// snapshot captures the directory's regular top-level files before any move
// begins, so moves during the run cannot change what gets processed. Names
// come back sorted for reproducible runs.
func (o *Organizer) snapshot(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, faults.Wrap(faults.ErrProvision, "enumerate files", fmt.Sprintf("read %s", dir), err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (o *Organizer) processFile(dir, name string, dryRun bool, rep *report.Report, logger *slog.Logger) {
	_, ext := splitName(name)
	categoryName := o.table.Classify(ext)

	dest, renamed, err := resolveDestination(dir, categoryName, name)
	if err != nil {
		logger.Warn("file skipped",
			logging.String("file", name),
			logging.String(logging.FieldCategory, categoryName),
			logging.Error(err))
		rep.AddFailure(name, err)
		return
	}

	if dryRun {
		logger.Info("would move file",
			logging.String("file", name),
			logging.String(logging.FieldCategory, categoryName),
			logging.String("destination", filepath.Base(dest)),
			logging.Bool("renamed", renamed))
		rep.Add(categoryName, renamed)
		return
	}

	if err := moveFile(filepath.Join(dir, name), dest); err != nil {
		wrapped := faults.Wrap(faults.ErrMove, "move file", name, err)
		logger.Warn("file move failed",
			logging.String("file", name),
			logging.String(logging.FieldCategory, categoryName),
			logging.Error(wrapped))
		rep.AddFailure(name, wrapped)
		return
	}

	logger.Info("moved file",
		logging.String("file", name),
		logging.String(logging.FieldCategory, categoryName),
		logging.String("destination", filepath.Base(dest)),
		logging.Bool("renamed", renamed))
	rep.Add(categoryName, renamed)
}

func (o *Organizer) logSummary(rep *report.Report, logger *slog.Logger) {
	if rep.Total() == 0 {
		logger.Info("no files were moved", logging.Int("failed", len(rep.Failures)))
		return
	}
	logger.Info("organization complete",
		logging.Int("moved", rep.Total()),
		logging.Int("renamed", rep.Renamed),
		logging.Int("failed", len(rep.Failures)))
}

// splitName separates a filename into base and extension following standard
// path-splitting semantics: the extension is the suffix from the final dot,
// and a leading-dot-only name like ".gitignore" has an empty extension.
func splitName(name string) (base, ext string) {
	ext = filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// resolveDestination returns a destination path inside the category folder
// that does not collide with an existing file, probing {base}_{n}{ext} for
// n = 1, 2, 3... when the plain name is taken. The bool result reports
// whether the file had to be renamed.
func resolveDestination(dir, categoryName, name string) (string, bool, error) {
	candidate := filepath.Join(dir, categoryName, name)
	taken, err := pathExists(candidate)
	if err != nil {
		return "", false, err
	}
	if !taken {
		return candidate, false, nil
	}

	base, ext := splitName(name)
	for n := 1; n <= maxProbeAttempts; n++ {
		candidate = filepath.Join(dir, categoryName, fmt.Sprintf("%s_%d%s", base, n, ext))
		taken, err := pathExists(candidate)
		if err != nil {
			return "", false, err
		}
		if !taken {
			return candidate, true, nil
		}
	}
	return "", false, fmt.Errorf("exhausted rename slots for %s in %s", name, categoryName)
}

func pathExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// moveFile relocates src to dst. Cross-device renames fall back to a verified
// copy followed by source removal.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := fileutil.CopyVerified(src, dst); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}
