package adapters

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/config"
)

type s3AudioStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3AudioStore(s3Svc *s3.S3, s3Config *config.S3Config) outbound.AudioStorePort {
	return &s3AudioStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3AudioStore) Upload(ctx context.Context, content []byte, name string) (string, error) {
	key := "announcements/" + name

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String("audio/wav"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.s3Config.BucketName).
			Str("fileName", name).
			Msg("Failed to upload audio to S3")
		return "", err
	}

	s3Url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Debug().
		Str("s3Url", s3Url).
		Msg("Successfully uploaded audio to S3")

	return s3Url, nil
}
