package spaces

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Client handles uploads and deletes against the S3-compatible asset host.
// Records store only the returned URL; the object key ("public id") is derived
// back from that URL when the asset needs deleting.
type Client struct {
	s3Client *s3.S3
	bucket   string
	region   string
	endpoint string
	cdnURL   string
}

// Config holds configuration for the asset host client
type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// NewClient creates a new asset host client
func NewClient(config Config) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		region:   config.Region,
		endpoint: config.Endpoint,
		cdnURL:   strings.TrimSuffix(config.CDNURL, "/"),
	}, nil
}

// Upload stores a file and returns its durable public URL
func (c *Client) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(data),
		ACL:         aws.String("public-read"), // Assets are served directly to visitors
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return c.FileURL(key), nil
}

// Delete removes an asset by its object key
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// DeleteByURL removes the asset a stored URL points at. URLs that do not
// belong to this bucket are ignored.
func (c *Client) DeleteByURL(ctx context.Context, assetURL string) error {
	key := c.KeyFromURL(assetURL)
	if key == "" {
		return nil
	}
	return c.Delete(ctx, key)
}

// FileURL returns the public URL for an object key
func (c *Client) FileURL(key string) string {
	if c.cdnURL != "" {
		return fmt.Sprintf("%s/%s", c.cdnURL, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", c.bucket, c.endpoint, key)
}

// KeyFromURL derives the object key ("public id") from a stored asset URL.
// Returns "" when the URL does not point at this bucket or CDN.
func (c *Client) KeyFromURL(assetURL string) string {
	if assetURL == "" {
		return ""
	}

	if c.cdnURL != "" && strings.HasPrefix(assetURL, c.cdnURL+"/") {
		return strings.TrimPrefix(assetURL, c.cdnURL+"/")
	}

	parsed, err := url.Parse(assetURL)
	if err != nil {
		return ""
	}
	if parsed.Host != fmt.Sprintf("%s.%s", c.bucket, c.endpoint) {
		return ""
	}
	return strings.TrimPrefix(parsed.Path, "/")
}

// GenerateKey generates a unique object key preserving the original extension
func GenerateKey(prefix, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}

// ContentType returns the content type for a filename, limited to the asset
// kinds the CMS accepts
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
