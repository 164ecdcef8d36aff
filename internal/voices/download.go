package voices

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// ModelPath returns where a voice's ONNX model lives on disk.
func ModelPath(modelsDir, voiceID string) string {
	return filepath.Join(modelsDir, voiceID+".onnx")
}

// ConfigPath returns where a voice's JSON config lives on disk.
func ConfigPath(modelsDir, voiceID string) string {
	return filepath.Join(modelsDir, voiceID+".onnx.json")
}

// Installed reports whether both model files are present.
func Installed(modelsDir, voiceID string) bool {
	if _, err := os.Stat(ModelPath(modelsDir, voiceID)); err != nil {
		return false
	}
	_, err := os.Stat(ConfigPath(modelsDir, voiceID))
	return err == nil
}

// Ensure downloads the voice model and config into modelsDir unless
// they are already present.
func Ensure(ctx context.Context, modelsDir, voiceID string) error {
	voice, ok := Find(voiceID)
	if !ok {
		ids := make([]string, 0, len(catalog))
		for _, v := range catalog {
			ids = append(ids, v.ID)
		}
		return fmt.Errorf("unknown voice %q, run 'pitch-tts list' to see the catalog (%d voices)", voiceID, len(ids))
	}

	if Installed(modelsDir, voiceID) {
		log.Debug("Voice already installed", "voice", voiceID)
		return nil
	}
	if err := os.MkdirAll(modelsDir, 0o755); err != nil {
		return fmt.Errorf("creating models dir: %w", err)
	}

	if err := fetch(ctx, voice.ModelURL(), ModelPath(modelsDir, voiceID)); err != nil {
		return err
	}
	return fetch(ctx, voice.ConfigURL(), ConfigPath(modelsDir, voiceID))
}

// fetch streams a URL to disk via a temp file so an interrupted
// download never leaves a half-written model behind.
func fetch(ctx context.Context, url, dest string) error {
	log.Info("Downloading", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: HTTP %d", url, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("moving download into place: %w", err)
	}

	log.Info("Downloaded", "path", dest, "size", humanize.Bytes(uint64(n)))
	return nil
}
