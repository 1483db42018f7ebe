/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */


package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
	"github.com/wso2/gdpr-notice-generator/internal/system/config"
	"github.com/wso2/gdpr-notice-generator/internal/system/constants"
)

const progressObjectSuffix = ".json"

// S3ProgressStore keeps one JSON object per partition under a key prefix.
type S3ProgressStore struct {
	client *s3.Client
	bucket string
	prefix string
}

// OpenS3ProgressStore builds a store from configuration using the default AWS credential chain.
// A custom endpoint enables S3 compatible services such as MinIO.
func OpenS3ProgressStore(ctx context.Context, cfg config.S3Config) (*S3ProgressStore, error) {

	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3ProgressStore(client, cfg.Bucket, cfg.Prefix), nil
}

func NewS3ProgressStore(client *s3.Client, bucket, prefix string) *S3ProgressStore {
	return &S3ProgressStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3ProgressStore) Driver() string {
	return constants.DriverS3
}

func (s *S3ProgressStore) objectKey(partitionKey string) string {
	return s.prefix + partitionKey + progressObjectSuffix
}

func (s *S3ProgressStore) Get(ctx context.Context, partitionKey string) (*model.ProgressRecord, error) {

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(s.objectKey(partitionKey))})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	var record model.ProgressRecord
	if err := json.Unmarshal(body, &record); err != nil {
		// Unreadable objects still hand back their content so the caller can decide.
		return &model.ProgressRecord{PartitionKey: partitionKey, State: string(body)}, nil
	}
	record.PartitionKey = partitionKey
	return &record, nil
}

func (s *S3ProgressStore) Upsert(ctx context.Context, record model.ProgressRecord) error {

	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(record.PartitionKey)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata:    map[string]string{"last-updated": formatTimestamp(record.LastUpdated)},
	})
	return err
}

func (s *S3ProgressStore) List(ctx context.Context) ([]model.PartitionSummary, error) {

	var summaries []model.PartitionSummary
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, object := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(object.Key), s.prefix)
			if !strings.HasSuffix(key, progressObjectSuffix) {
				continue
			}
			summaries = append(summaries, model.PartitionSummary{
				PartitionKey: strings.TrimSuffix(key, progressObjectSuffix),
				LastUpdated:  aws.ToTime(object.LastModified).UTC(),
			})
		}
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].PartitionKey < summaries[j].PartitionKey })
	return summaries, nil
}

// Ping checks that the bucket exists and is reachable with the configured credentials.
func (s *S3ProgressStore) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}

func (s *S3ProgressStore) Close(_ context.Context) error {
	return nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchKey") {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
