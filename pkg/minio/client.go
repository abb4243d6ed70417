package minio

import (
	"NoteShare/config"
	"NoteShare/pkg/log"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewClient(conf *config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKeyID, conf.SecretAccessKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, conf.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.L.Info("minio bucket created", zap.String("bucket", conf.Bucket))
	}
	log.L.Info("minio client success", zap.String("endpoint", conf.Endpoint))
	return client, nil
}
