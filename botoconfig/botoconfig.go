// Package botoconfig writes the boto-style credentials file consumed by the
// rest of the deployment tooling.
package botoconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aws-bootstrap/config"

	uuid "github.com/satori/go.uuid"
)

const (
	FileName = ".boto"

	credentialsSection = "[Credentials]"
	accessKeyField     = "aws_access_key_id"
	secretKeyField     = "aws_secret_access_key"
)

// DefaultPath returns ~/.boto for the current user.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %s", err)
	}

	return filepath.Join(home, FileName), nil
}

// Write renders the three-line credentials block. There is no trailing newline.
func Write(w io.Writer, creds config.Credentials) error {
	_, err := io.WriteString(w, strings.Join([]string{
		credentialsSection,
		accessKeyField + " = " + creds.AccessKey,
		secretKeyField + " = " + creds.SecretKey,
	}, "\n"))
	return err
}

// WriteFile replaces path with the rendered credentials. The content goes to a
// sibling temp file first and is renamed into place.
func WriteFile(path string, creds config.Credentials) error {
	buf := &bytes.Buffer{}
	err := Write(buf, creds)
	if err != nil {
		return fmt.Errorf("rendering credentials: %s", err)
	}

	tmpPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewV4().String()))

	err = os.WriteFile(tmpPath, buf.Bytes(), 0600)
	if err != nil {
		return fmt.Errorf("writing credentials file %s: %s", tmpPath, err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing credentials file %s: %s", path, err)
	}

	return nil
}
