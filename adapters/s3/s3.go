// Package s3 將藝術品圖片儲存到相容 S3 的物件儲存
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// DefaultMaxImageSize 是上傳圖片的大小上限
const DefaultMaxImageSize int64 = 5 << 20

// PutObjectAPI 是上傳圖片需要的 S3 操作
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Region          string
	Bucket          string
	PublicBaseURL   string
}

// NewClient 依照設定建立 S3 客戶端
func NewClient(ctx context.Context, config Config) (*s3.Client, error) {
	const op = "s3.NewClient"
	region := config.Region
	if region == "" {
		region = "auto"
	}
	cfg, err := awsCfg.LoadDefaultConfig(
		ctx,
		awsCfg.WithBaseEndpoint(config.Endpoint),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, "")),
		awsCfg.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to load AWS config, err=%w", op, err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	}), nil
}

type ImageOperator struct {
	// Client 是 S3 客戶端。
	Client PutObjectAPI
	// Bucket 是 S3 存儲桶的名稱。
	Bucket string
	// PublicEndpoint 是 S3 存儲桶的公開 Endpoint。
	PublicEndpoint *url.URL
	// MaxSize 是單張圖片的大小上限。
	MaxSize int64
}

func NewImageOperator(client PutObjectAPI, bucket, publicBaseURL string) (*ImageOperator, error) {
	const op = "s3.NewImageOperator"
	if bucket == "" {
		return nil, errors.New("bucket cannot be empty")
	}
	publicEndpoint, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse public base URL, err=%w", op, err)
	}
	return &ImageOperator{
		Client:         client,
		Bucket:         bucket,
		PublicEndpoint: publicEndpoint,
		MaxSize:        DefaultMaxImageSize,
	}, nil
}

// Upload 檢查並上傳一張圖片，回傳公開的網址
//
// 限制圖片:
//   - 1. 不超過 MaxSize
//   - 2. MIME 類型為不包含腳本的圖片檔案
func (s *ImageOperator) Upload(ctx context.Context, prefix string, body io.Reader) (string, error) {
	const op = "s3.Upload"
	content, err := readImage(body, s.MaxSize)
	var sizeErr *ImageTooLargeError
	if errors.As(err, &sizeErr) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to read image, err=%w", op, err)
	}

	mimeType, ext, err := DetectImage(content)
	if err != nil {
		return "", err
	}

	key := path.Join(prefix, uuid.New().String()+"."+ext)
	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to upload file to S3, err=%w", op, err)
	}
	return s.PublicEndpoint.JoinPath(key).String(), nil
}
