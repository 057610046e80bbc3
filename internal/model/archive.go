// Package model handles packaged model archives: naming, packing and
// inspection of the .tar.gz bundles the train command produces.
package model

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ArchiveExtension is the suffix of packaged model files.
const ArchiveExtension = "tar.gz"

// manifestName is the metadata entry inside every archive.
const manifestName = "manifest.yml"

const timestampFormat = "20060102-150405"

// Manifest describes the contents of a packaged model.
type Manifest struct {
	Name      string    `yaml:"name"`
	TrainedAt time.Time `yaml:"trained_at"`
	Files     []string  `yaml:"files"`
}

// CreateOutputPath derives a timestamped archive path under outputPath using
// the current local time. A path that already names an archive is returned
// unchanged.
func CreateOutputPath(outputPath, prefix string) string {
	return CreateOutputPathAt(outputPath, prefix, time.Now())
}

// CreateOutputPathAt is CreateOutputPath with an explicit timestamp.
func CreateOutputPathAt(outputPath, prefix string, t time.Time) string {
	if strings.HasSuffix(outputPath, ArchiveExtension) {
		return outputPath
	}
	fileName := fmt.Sprintf("%s%s.%s", prefix, t.Format(timestampFormat), ArchiveExtension)
	return filepath.Join(outputPath, fileName)
}

// Package bundles the given files into a gzipped tarball at outPath,
// prepending a manifest entry. Parent directories are created as needed.
func Package(outPath string, files []string, trainedAt time.Time) error {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() { _ = out.Close() }()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	manifest := Manifest{
		Name:      strings.TrimSuffix(filepath.Base(outPath), "."+ArchiveExtension),
		TrainedAt: trainedAt,
		Files:     make([]string, 0, len(files)),
	}
	for _, f := range files {
		manifest.Files = append(manifest.Files, filepath.Base(f))
	}
	sort.Strings(manifest.Files)

	manifestData, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := writeTarEntry(tw, manifestName, manifestData, trainedAt); err != nil {
		return err
	}

	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f, err)
		}
		if err := writeTarEntry(tw, filepath.Base(f), content, trainedAt); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return out.Close()
}

func writeTarEntry(tw *tar.Writer, name string, content []byte, modTime time.Time) error {
	hdr := &tar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(content)),
		ModTime: modTime,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if _, err := tw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Inspect reads the manifest from a packaged model archive.
func Inspect(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s is not a model archive: %w", path, err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read model %s: %w", path, err)
		}
		if hdr.Name != manifestName {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		var manifest Manifest
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, fmt.Errorf("failed to decode manifest: %w", err)
		}
		return &manifest, nil
	}

	return nil, fmt.Errorf("model %s has no manifest", path)
}

// ArchiveInfo describes one archive in a models directory listing.
type ArchiveInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// ListArchives returns the model archives directly under dir, newest first.
// A missing directory yields an empty listing.
func ListArchives(dir string) ([]ArchiveInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var archives []ArchiveInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "."+ArchiveExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		archives = append(archives, ArchiveInfo{
			Name:     entry.Name(),
			Path:     filepath.Join(dir, entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].Modified.After(archives[j].Modified)
	})
	return archives, nil
}
