package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/chartrename/internal/model"
	"github.com/gyeh/chartrename/internal/normalize"
)

// ErrSourceNotFound means the file to rename disappeared before the move.
var ErrSourceNotFound = errors.New("source file not found")

// ErrCollisionUnresolved means every disambiguation suffix up to the cap
// was already taken.
var ErrCollisionUnresolved = errors.New("no free collision suffix")

// maxSuffixAttempts bounds the "_1", "_2", ... search after the hash
// suffix itself collides.
const maxSuffixAttempts = 1000

// Renamer moves parsed chart files to their canonical names.
// An empty OutputDir renames in place beside the source.
type Renamer struct {
	OutputDir string
}

// Rename builds the canonical filename for info and moves source there.
// Identical-content targets are replaced so reprocessing the same document
// is idempotent; a genuinely different document that wants the same name
// gets a content-derived hash suffix instead of overwriting. The move is
// the single state-changing step: on error the source is untouched.
func (r *Renamer) Rename(source string, info *model.PatientInfo, format model.FileFormat) (string, error) {
	if _, err := os.Stat(source); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, source)
		}
		return "", fmt.Errorf("stat source: %w", err)
	}

	filename, err := BuildFilename(info, format)
	if err != nil {
		return "", err
	}

	targetDir := r.OutputDir
	if targetDir == "" {
		targetDir = filepath.Dir(source)
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	target, err := resolveCollision(source, filepath.Join(targetDir, filename))
	if err != nil {
		return "", err
	}

	if err := moveFile(source, target); err != nil {
		return "", fmt.Errorf("move file: %w", err)
	}
	return target, nil
}

// resolveCollision decides the final target path. The existence check and
// the later move are not atomic; concurrent runs racing for the same name
// end up with a hash-suffixed duplicate at worst, never data loss.
func resolveCollision(source, target string) (string, error) {
	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return target, nil
		}
		return "", fmt.Errorf("stat target: %w", err)
	}

	if samePath(source, target) {
		return target, nil
	}

	identical, err := sameContent(source, target)
	if err != nil {
		return "", err
	}
	if identical {
		// Same bytes already sit at the target: replace, so
		// reprocessing the same export does not accumulate copies.
		if err := os.Remove(target); err != nil {
			return "", fmt.Errorf("remove identical target: %w", err)
		}
		return target, nil
	}

	short, err := normalize.ShortHash(source)
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	candidate := fmt.Sprintf("%s_%s%s", stem, short, ext)
	if free(candidate) {
		return candidate, nil
	}
	for i := 1; i <= maxSuffixAttempts; i++ {
		candidate = fmt.Sprintf("%s_%s_%d%s", stem, short, i, ext)
		if free(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrCollisionUnresolved, target)
}

func free(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, os.ErrNotExist)
}

func samePath(a, b string) bool {
	ap, errA := filepath.Abs(a)
	bp, errB := filepath.Abs(b)
	return errA == nil && errB == nil && ap == bp
}

func sameContent(a, b string) (bool, error) {
	hashA, err := normalize.FileHash(a)
	if err != nil {
		return false, err
	}
	hashB, err := normalize.FileHash(b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}

// moveFile renames source to target, falling back to copy-and-delete when
// the two paths sit on different filesystems.
func moveFile(source, target string) error {
	if err := os.Rename(source, target); err == nil {
		return nil
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(target)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return err
	}
	return os.Remove(source)
}
