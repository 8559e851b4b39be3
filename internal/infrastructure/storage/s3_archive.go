package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	appconfig "portal-api/internal/config"
	"portal-api/internal/domain/lca"
	applog "portal-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Document is an optional file attached to a submission.
type Document struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// S3Archive stores a copy of every accepted posting under lca/<id>/ so the
// public access file survives independently of the database.
type S3Archive struct {
	client objectPutter
	bucket string
	logger *zap.Logger
}

func NewS3Archive(ctx context.Context, cfg appconfig.S3Config, logger *zap.Logger) (*S3Archive, error) {
	logger = applog.OrNop(logger)
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Archive{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func PostingKey(id string) string {
	return path.Join("lca", id, "posting.json")
}

func DocumentKey(id, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		name = "document"
	}
	return path.Join("lca", id, "documents", name)
}

func (a *S3Archive) ArchivePosting(ctx context.Context, p lca.Posting) error {
	if a == nil || a.client == nil {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	key := PostingKey(p.ID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(b),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"lca-number":      p.LCANumber,
			"blockchain-hash": p.BlockchainHash,
		},
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	a.logger.Debug("[Archive] posting stored", zap.String("key", key))
	return nil
}

func (a *S3Archive) ArchiveDocument(ctx context.Context, postingID string, doc Document) (string, error) {
	if a == nil || a.client == nil {
		return "", nil
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := DocumentKey(postingID, doc.Filename)
	in := &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        doc.Body,
		ContentType: aws.String(contentType),
	}
	if doc.Size > 0 {
		in.ContentLength = aws.Int64(doc.Size)
	}
	if _, err := a.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	a.logger.Debug("[Archive] document stored", zap.String("key", key))
	return key, nil
}
