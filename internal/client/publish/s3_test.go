package publish

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "decks",
		LinkTTL:   time.Hour,
	}
}

func restoreSeams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	origUpload := upload
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
		upload = origUpload
	})
}

func TestPublish_Disabled(t *testing.T) {
	p := NewPublisher(Config{})
	assert.False(t, p.Enabled())

	_, err := p.Publish(context.Background(), "x.html", "text/html", nil)
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestPublish_PresignsUploadsAndLinks(t *testing.T) {
	restoreSeams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}

	var endpoint string
	var pathStyle bool
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		endpoint = aws.ToString(opts.BaseEndpoint)
		pathStyle = opts.UsePathStyle
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	var putKey, getKey, contentType string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		putKey = aws.ToString(in.Key)
		contentType = aws.ToString(in.ContentType)
		assert.Equal(t, "decks", aws.ToString(in.Bucket))
		return &v4.PresignedHTTPRequest{URL: "http://minio/put?sig=1", Method: http.MethodPut}, nil
	}

	var uploaded []byte
	upload = func(ctx context.Context, c *http.Client, url, ct string, body []byte) error {
		assert.Equal(t, "http://minio/put?sig=1", url)
		assert.Equal(t, "text/html", ct)
		uploaded = body
		return nil
	}

	var opts s3.PresignOptions
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		getKey = aws.ToString(in.Key)
		for _, fn := range optFns {
			fn(&opts)
		}
		return &v4.PresignedHTTPRequest{URL: "http://minio/get?sig=2", Method: http.MethodGet}, nil
	}

	p := NewPublisher(testConfig())
	p.now = func() time.Time { return time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) }

	link, err := p.Publish(context.Background(), "dir/My_Deck.html", "text/html", []byte("<html/>"))
	require.NoError(t, err)

	assert.Equal(t, "http://minio/get?sig=2", link)
	assert.Equal(t, "http://127.0.0.1:9000", endpoint)
	assert.True(t, pathStyle)
	assert.Equal(t, "text/html", contentType)
	assert.Equal(t, []byte("<html/>"), uploaded)
	assert.Equal(t, putKey, getKey)
	assert.True(t, strings.HasPrefix(putKey, "exports/2025/03/09/"), putKey)
	assert.True(t, strings.HasSuffix(putKey, "/My_Deck.html"), putKey)
	assert.Equal(t, time.Hour, opts.Expires)
}

func TestPublish_Errors(t *testing.T) {
	okLoad := func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	okClient := func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	okPresign := func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	okPut := func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "u"}, nil
	}
	okUpload := func(ctx context.Context, c *http.Client, url, ct string, body []byte) error { return nil }

	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func()
		msg   string
	}{
		{
			name: "config",
			setup: func() {
				loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
					return aws.Config{}, boom
				}
			},
			msg: "load aws config",
		},
		{
			name: "presign put",
			setup: func() {
				presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
					return nil, boom
				}
			},
			msg: "presign put",
		},
		{
			name:  "upload",
			setup: func() { upload = func(ctx context.Context, c *http.Client, url, ct string, body []byte) error { return boom } },
			msg:   "upload exports/",
		},
		{
			name: "presign get",
			setup: func() {
				presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
					return nil, boom
				}
			},
			msg: "presign get",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreSeams(t)
			loadDefaultAWSConfig = okLoad
			newS3ClientFromConfig = okClient
			newS3PresignClient = okPresign
			presignPutObject = okPut
			upload = okUpload
			tt.setup()

			_, err := NewPublisher(testConfig()).Publish(context.Background(), "a.html", "text/html", nil)
			require.ErrorIs(t, err, boom)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
