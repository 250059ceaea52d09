// Copyright Johnny Jacob, 2026. All rights reserved.

package vault

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// migrateAssets mirrors the assets/ subtree into the target, recursively,
// byte for byte. File permission bits and modification times are carried
// over. A missing assets directory is a warning, not an error.
func (m *Migrator) migrateAssets(w io.Writer, rep *Report) {
	srcDir := filepath.Join(m.cfg.SourceDir, assetsDir)
	if _, err := os.Stat(srcDir); err != nil {
		fmt.Fprintf(w, "warning: directory not found: %s\n", srcDir)
		return
	}
	dstDir := filepath.Join(m.cfg.TargetDir, assetsDir)

	_ = filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			rep.Errors++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			rep.Errors++
			return nil
		}

		if m.cfg.DryRun {
			fmt.Fprintf(w, "would copy asset: %s\n", rel)
			rep.Assets++
			return nil
		}
		if err := copyFile(p, filepath.Join(dstDir, rel)); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rel, err)
			rep.Errors++
			return nil
		}
		fmt.Fprintf(w, "copied asset: %s\n", rel)
		rep.Assets++
		return nil
	})
}

// copyFile copies src to dst, creating parent directories and carrying
// over the source's permission bits and modification time. os.WriteFile
// applies the umask on creation, so the mode is set again afterwards.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
