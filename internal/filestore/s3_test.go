package filestore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	headErr error
	putErr  error
	puts    []*s3.PutObjectInput
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[*in.Key]; ok {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, &types.NotFound{}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Put(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	s := &S3{client: fake, bucket: "lexdesk"}
	ctx := context.Background()

	key := "1/2025/01/abc/contract.pdf"
	require.NoError(t, s.Put(ctx, key, strings.NewReader("pdf"), 3))
	assert.Equal(t, "pdf", fake.objects[key])

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "*", aws.ToString(fake.puts[0].IfNoneMatch))
	assert.Equal(t, int64(3), aws.ToInt64(fake.puts[0].ContentLength))

	err := s.Put(ctx, key, strings.NewReader("other"), 5)
	require.ErrorIs(t, err, common.ErrFileExists)
	assert.Len(t, fake.puts, 1, "no put after a positive head")
	assert.Equal(t, "s3://lexdesk/"+key, s.Location(key))
}

func TestS3_PutRaceAndErrors(t *testing.T) {
	ctx := context.Background()

	raced := &fakeS3{objects: map[string]string{}, putErr: &smithy.GenericAPIError{Code: "PreconditionFailed"}}
	err := (&S3{client: raced, bucket: "b"}).Put(ctx, "k/x.pdf", strings.NewReader("x"), 1)
	require.ErrorIs(t, err, common.ErrFileExists)

	denied := &fakeS3{objects: map[string]string{}, headErr: &smithy.GenericAPIError{Code: "AccessDenied"}}
	err = (&S3{client: denied, bucket: "b"}).Put(ctx, "k/x.pdf", strings.NewReader("x"), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrFileExists)
	assert.Empty(t, denied.puts)

	missing := &fakeS3{objects: map[string]string{}, headErr: &smithy.GenericAPIError{Code: "NotFound"}}
	require.NoError(t, (&S3{client: missing, bucket: "b"}).Put(ctx, "k/x.pdf", strings.NewReader("x"), 1))
}

func TestNewS3_AppliesOptions(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var lo awsconfig.LoadOptions
	loadDefaultAWSConfig = func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{Region: lo.Region}, nil
	}
	var so s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&so)
		}
		return &fakeS3{objects: map[string]string{}}
	}

	s, err := NewS3(context.Background(), S3Options{
		Bucket:       "lexdesk",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minioadmin",
		SecretKey:    "minioadmin",
	})
	require.NoError(t, err)
	assert.Equal(t, "lexdesk", s.bucket)
	assert.Equal(t, "us-east-1", lo.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "minioadmin", creds.AccessKeyID)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(so.BaseEndpoint))
	assert.True(t, so.UsePathStyle)

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}
	_, err = NewS3(context.Background(), S3Options{Bucket: "b"})
	require.Error(t, err)
}
