package publish

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/vx9/stemstation/constants"
)

// Chart uploads a chart document to the release bucket and returns
// the object key it was stored under. CHART_S3_ENDPOINT points the
// upload at a local stack during development.
func Chart(path string) (string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read chart %v: %w", path, err)
	}

	config := aws.Config{Region: aws.String("us-east-1")}
	if endpoint := constants.GetChartEndpoint(); endpoint != "" {
		config.Endpoint = &endpoint
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(&config)
	if err != nil {
		return "", fmt.Errorf("could not create an S3 session because %v", err.Error())
	}

	key := "charts/" + filepath.Base(path)
	client := s3.New(sess)
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(constants.GetChartBucket()),
		Key:         aws.String(key),
		Body:        bytes.NewReader(dat),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("could not upload %v: %w", key, err)
	}
	return key, nil
}
