package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cameronsjo/rosctl/internal/config"
	"github.com/cameronsjo/rosctl/internal/progress"
	"github.com/cameronsjo/rosctl/internal/ui"
)

// requestIDHeader carries a per-upload id for correlating server logs.
const requestIDHeader = "X-Request-Id"

var (
	uploadURL        string
	uploadNoProgress bool
	uploadTimeout    time.Duration
)

// errNoUploadURL is returned when neither --url nor ROSCTL_UPLOAD_URL is set.
var errNoUploadURL = errors.New("no upload URL: pass --url or set ROSCTL_UPLOAD_URL")

// uploadCmd streams a JSON payload to an endpoint.
var uploadCmd = &cobra.Command{
	Use:   "upload <payload.json>",
	Short: "Stream a JSON payload to an endpoint",
	Long: `Read a JSON payload and POST it to the upload endpoint in a single attempt.

When stdin is an interactive terminal a progress bar measured in kilobytes
is drawn on stderr while the body is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadURL, "url", "", "Upload endpoint")
	uploadCmd.Flags().BoolVar(&uploadNoProgress, "no-progress", false, "Never draw the progress bar")
	uploadCmd.Flags().DurationVar(&uploadTimeout, "timeout", 5*time.Minute, "Request timeout")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	url := uploadURL
	if url == "" {
		url = cfg.UploadURL
	}
	if url == "" {
		return errNoUploadURL
	}

	payload, err := readPayload(args[0])
	if err != nil {
		return err
	}

	var opts []progress.Option
	if uploadNoProgress || cfg.NoProgress {
		opts = append(opts, progress.WithTerminal(func() bool { return false }))
	}

	body, err := progress.NewUploadStream(payload, opts...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	var size int
	if sized, ok := body.(interface{ Len() int }); ok {
		size = sized.Len()
		req.ContentLength = int64(size)
	}

	client := &http.Client{Timeout: uploadTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upload failed: %s: %s", resp.Status, bytes.TrimSpace(msg))
	}

	ui.Upload("Uploaded %s to %s (request %s)", humanize.Bytes(uint64(size)), url, requestID)
	return nil
}

// readPayload reads and decodes a JSON file, keeping numbers verbatim.
func readPayload(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload %s: %w", path, err)
	}
	return payload, nil
}
