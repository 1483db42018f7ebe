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
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/gdpr-notice-generator/internal/progress/model"
)

const fakeBucket = "gdpr-progress"

// fakeS3Transport serves the handful of path style S3 calls the progress store makes.
type fakeS3Transport struct {
	mu      sync.Mutex
	objects map[string][]byte
	failGet bool
}

func respond(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body)), Header: header}
}

func (f *fakeS3Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(req.URL.Path, "/"+fakeBucket)
	key := strings.TrimPrefix(path, "/")

	switch {
	case req.Method == http.MethodHead && key == "":
		return respond(http.StatusOK, "", nil), nil
	case req.Method == http.MethodGet && req.URL.Query().Get("list-type") == "2":
		prefix := req.URL.Query().Get("prefix")
		var keys []string
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><ListBucketResult><IsTruncated>false</IsTruncated>`)
		for _, k := range keys {
			fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size><LastModified>2026-01-01T00:00:00Z</LastModified></Contents>", k, len(f.objects[k]))
		}
		b.WriteString("</ListBucketResult>")
		return respond(http.StatusOK, b.String(), http.Header{"Content-Type": {"application/xml"}}), nil
	case req.Method == http.MethodGet:
		if f.failGet {
			return respond(http.StatusForbidden, `<Error><Code>AccessDenied</Code><Message>denied</Message></Error>`, nil), nil
		}
		body, ok := f.objects[key]
		if !ok {
			return respond(http.StatusNotFound, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`, nil), nil
		}
		return respond(http.StatusOK, string(body), http.Header{
			"Content-Type":   {"application/json"},
			"Content-Length": {fmt.Sprintf("%d", len(body))},
			"Last-Modified":  {time.Now().UTC().Format(http.TimeFormat)},
		}), nil
	case req.Method == http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		f.objects[key] = bytes.Clone(body)
		return respond(http.StatusOK, "", http.Header{"ETag": {`"etag"`}}), nil
	}
	return respond(http.StatusNotImplemented, "", nil), nil
}

func newFakeS3Store(transport *fakeS3Transport) *S3ProgressStore {
	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		Credentials:                credentials.NewStaticCredentialsProvider("AKIA", "SECRET", ""),
		HTTPClient:                 &http.Client{Transport: transport},
		UsePathStyle:               true,
		BaseEndpoint:               aws.String("https://fake.s3.local"),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})
	return NewS3ProgressStore(client, fakeBucket, "progress/")
}

func TestS3ProgressStore(t *testing.T) {
	transport := &fakeS3Transport{objects: map[string][]byte{}}
	s := newFakeS3Store(transport)

	assert.Equal(t, "s3", s.Driver())
	exerciseProgressStore(t, s)
	assert.Contains(t, transport.objects, "progress/Acme Corp.json")
}

func TestS3ProgressStore_UnreadableObject(t *testing.T) {
	transport := &fakeS3Transport{objects: map[string][]byte{"progress/Acme Corp.json": []byte("garbage")}}

	record, err := newFakeS3Store(transport).Get(context.Background(), "Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "garbage", record.State)
}

func TestS3ProgressStore_AccessDenied(t *testing.T) {
	transport := &fakeS3Transport{objects: map[string][]byte{}, failGet: true}

	_, err := newFakeS3Store(transport).Get(context.Background(), "Acme Corp")
	assert.Error(t, err)
	assert.False(t, isNotFound(err))
}

func TestS3ProgressStore_ListIgnoresForeignObjects(t *testing.T) {
	transport := &fakeS3Transport{objects: map[string][]byte{
		"progress/readme.txt": []byte("x"),
		"other/Acme.json":     []byte("{}"),
	}}
	s := newFakeS3Store(transport)
	require.NoError(t, s.Upsert(context.Background(), model.ProgressRecord{PartitionKey: "Globex", State: "{}"}))

	summaries, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Globex", summaries[0].PartitionKey)
}
