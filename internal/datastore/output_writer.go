package datastore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/ipfresh/internal/common"
	"github.com/rs/zerolog"
)

// ErrEmptyResult is returned when an empty address set would overwrite an
// existing non-empty artifact. The previous list stays in place: an empty run
// almost always means the sources were unreachable, not that the list shrank
// to nothing.
var ErrEmptyResult = errors.New("refusing to overwrite non-empty output with empty result")

// OutputWriter persists the finalized address list. It owns all file-system
// side effects: backup of the previous artifact, temp-file staging and the
// atomic rename into place.
type OutputWriter struct {
	logger zerolog.Logger
}

// NewOutputWriter creates a new OutputWriter
func NewOutputWriter(logger zerolog.Logger) *OutputWriter {
	return &OutputWriter{
		logger: logger.With().Str("component", "OutputWriter").Logger(),
	}
}

// WriteAddresses writes one address per line, ascending, newline-terminated.
// The previous artifact, if present, is renamed to "<name>.bak" first; the new
// content is staged to a temp file in the same directory and renamed over the
// target so a crash mid-write never leaves a truncated artifact.
func (ow *OutputWriter) WriteAddresses(outputFile string, addresses []string) error {
	if len(addresses) == 0 {
		if existing, err := ReadAddresses(outputFile); err == nil && len(existing) > 0 {
			ow.logger.Warn().Str("output_file", outputFile).Msg("Empty result, keeping existing artifact")
			return ErrEmptyResult
		}
	}

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return common.WrapError(err, "failed to create output directory: "+dir)
	}

	if backupPath, err := ow.backupExisting(outputFile); err != nil {
		return err
	} else if backupPath != "" {
		ow.logger.Info().Str("backup_file", backupPath).Msg("Backed up previous artifact")
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(outputFile)+".tmp-*")
	if err != nil {
		return common.WrapError(err, "failed to create temp output file")
	}
	tempPath := tempFile.Name()

	var content strings.Builder
	for _, address := range addresses {
		content.WriteString(address)
		content.WriteByte('\n')
	}

	if _, err := tempFile.WriteString(content.String()); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return common.WrapError(err, "failed to write addresses to temp file")
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return common.WrapError(err, "failed to close temp output file")
	}

	if err := os.Rename(tempPath, outputFile); err != nil {
		os.Remove(tempPath)
		return common.WrapError(err, "failed to replace output file: "+outputFile)
	}

	ow.logger.Info().
		Str("output_file", outputFile).
		Int("address_count", len(addresses)).
		Msg("Address list written")

	return nil
}

// backupExisting renames the current artifact to "<name>.bak" if it exists.
// Returns the backup path, or empty when there was nothing to back up.
func (ow *OutputWriter) backupExisting(outputFile string) (string, error) {
	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		return "", nil
	}

	backupPath := outputFile + ".bak"
	if err := os.Rename(outputFile, backupPath); err != nil {
		return "", common.WrapError(err, "failed to back up existing output file")
	}
	return backupPath, nil
}

// ReadAddresses reads an artifact back as its list of address lines,
// skipping blank lines.
func ReadAddresses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var addresses []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			addresses = append(addresses, line)
		}
	}
	return addresses, nil
}
