// Package iofs prepares application directories and reads query files.
package iofs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/templates"
)

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644)
	if err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadQueries reads names from a file. Every line may contain one or
// more comma-separated names. Empty lines and lines that start with '#'
// are ignored.
func ReadQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	res, err := ParseQueries(f)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// ParseQueries reads names from r, see ReadQueries.
func ParseQueries(r io.Reader) ([]string, error) {
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res = append(res, lineage.SplitQueries(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateOutput opens a file for results, truncating existing content.
// The caller closes the file.
func CreateOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, WriteFileError(path, err)
	}
	return f, nil
}
