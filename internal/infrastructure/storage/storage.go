package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to Supabase storage over HTTP. Only deletion is needed here:
// listing images are uploaded by the frontend, the backend just cleans them
// up when a listing is removed.
type Client struct {
	BaseURL   string
	SecretKey string
	Bucket    string
	Client    *http.Client
}

// DeleteObject removes one object from the configured bucket.
func (c *Client) DeleteObject(ctx context.Context, path string) error {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if c.BaseURL == "" {
		return fmt.Errorf("storage: SUPABASE_URL is not set")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("storage: SUPABASE_SECRET_KEY is not set")
	}
	if path == "" {
		return fmt.Errorf("storage: empty object path")
	}
	base := strings.TrimRight(c.BaseURL, "/")
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", base, c.Bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	// Match @supabase/supabase-js: both apikey and Authorization Bearer (same key)
	req.Header.Set("apikey", c.SecretKey)
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("storage request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage error: status %d body: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteObjectByURL derives the object key from a public URL and deletes it.
func (c *Client) DeleteObjectByURL(ctx context.Context, rawURL string) error {
	key := ObjectKeyFromPublicURL(rawURL, c.Bucket)
	if key == "" {
		return fmt.Errorf("storage: url %q is not an object in bucket %q", rawURL, c.Bucket)
	}
	return c.DeleteObject(ctx, key)
}

// ObjectKeyFromPublicURL derives the bucket-relative object key from a public
// object URL (".../storage/v1/object/public/<bucket>/<key>"). Returns "" when
// the URL does not point into bucket.
func ObjectKeyFromPublicURL(rawURL, bucket string) string {
	marker := "/storage/v1/object/public/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return ""
	}
	key := rawURL[idx+len(marker):]
	// Strip query string (signed/public URLs may carry one)
	if q := strings.IndexByte(key, '?'); q >= 0 {
		key = key[:q]
	}
	return key
}
