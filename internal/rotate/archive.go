package rotate

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ArchiveOld packs every *.log file in dir except keep (a base name) into a
// timestamped tar.gz and removes the originals. A directory with nothing to
// pack is a no-op.
func ArchiveOld(dir, keep string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return err
	}
	var old []string
	for _, m := range matches {
		if filepath.Base(m) == keep {
			continue
		}
		old = append(old, m)
	}
	if len(old) == 0 {
		return nil
	}

	name := filepath.Join(dir, "logs_archive_"+time.Now().Format("20060102_150405")+".tar.gz")
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	for _, m := range old {
		if err := addFile(tw, m); err != nil {
			tw.Close()
			gz.Close()
			f.Close()
			return fmt.Errorf("archiving %s: %w", m, err)
		}
	}
	if err := tw.Close(); err != nil {
		gz.Close()
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Originals are removed only after the archive is safely on disk.
	for _, m := range old {
		if err := os.Remove(m); err != nil {
			fmt.Fprintf(os.Stderr, "tidylog: removing archived log %s: %v\n", m, err)
		}
	}
	return nil
}

func addFile(tw *tar.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := tar.FileInfoHeader(st, "")
	if err != nil {
		return err
	}
	hdr.Name = filepath.Base(path)
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err = io.Copy(tw, f)
	return err
}
