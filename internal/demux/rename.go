package demux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyRenamed copies files into outDir under new names, driven by a
// whitespace-separated two-column listing (old path, new name), one
// pair per line. A missing source file is logged and skipped so one
// bad line doesn't sink the batch.
func CopyRenamed(patterns io.Reader, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v", outDir, err)
	}

	scanner := bufio.NewScanner(patterns)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) != 2 {
			return fmt.Errorf("pattern line %d: expected \"old new\", got %q", lineNum, line)
		}

		oldPath, newName := cols[0], cols[1]
		if _, err := os.Stat(oldPath); os.IsNotExist(err) {
			stderr.Printf("file %s does not exist\n", oldPath)
			continue
		}

		if err := copyFile(oldPath, filepath.Join(outDir, newName)); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %v", src, dst, err)
	}

	return out.Close()
}
