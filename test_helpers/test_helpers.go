package test_helpers

import (
	"aws-bootstrap/config"

	"github.com/aws/aws-sdk-go/aws"
)

func AwsConfigFrom(configCredentials config.Credentials) *aws.Config {
	return configCredentials.GetAwsConfig()
}
