package inttest

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	minioCredentials "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	minioContainer "github.com/testcontainers/testcontainers-go/modules/minio"
)

// SetupS3 creates an S3 container (using MinIO) with the given buckets already created.
func SetupS3(t *testing.T, buckets ...string) *S3Client {
	t.Helper()
	ctx := context.TODO()

	container, err := minioContainer.Run(ctx, "minio/minio:latest")
	require.NoError(t, err, "failed to start S3")
	t.Cleanup(func() { require.NoError(t, testcontainers.TerminateContainer(container), "failed to stop S3") })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get S3 endpoint")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  minioCredentials.NewStaticV4(container.Username, container.Password, ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")
	for _, bucket := range buckets {
		err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoErrorf(t, err, "failed to create bucket %q", bucket)
	}

	region := "eu-west-1"
	return &S3Client{
		Endpoint: "http://" + endpoint,
		Client: s3.NewFromConfig(
			aws.Config{
				Region:      region,
				Credentials: credentials.NewStaticCredentialsProvider(container.Username, container.Password, ""),
			},
			func(o *s3.Options) {
				o.BaseEndpoint = aws.String("http://" + endpoint)
				o.UsePathStyle = true
			},
		),
	}
}

// S3Client allows making requests to S3. It does so by wrapping an S3.Client. Access the actual
// S3.Client for specific use cases where our defaults don't work.
type S3Client struct {
	Endpoint string
	Client   *s3.Client
}

func (sc *S3Client) GetObject(t *testing.T, bucket, key string) []byte {
	t.Helper()

	object, err := sc.Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	errMsg := "failed GET from S3 bucket %q and key %q"
	require.NoErrorf(t, err, errMsg, bucket, key)
	body, err := io.ReadAll(object.Body)
	require.NoErrorf(t, err, errMsg+": failed to read body", bucket, key)
	return body
}
