package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

const (
	AccessKeyEnv = "AWS_ACCESS_KEY_ID"
	SecretKeyEnv = "AWS_SECRET_ACCESS_KEY"
)

type Credentials struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string
}

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// MissingEnvError reports a required environment variable that is not set.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("The environment variable %s must be set", e.Name)
}

// CredentialsFromEnv reads the access key pair. A variable set to the empty
// string counts as set.
func CredentialsFromEnv(lookup LookupEnvFunc) (Credentials, error) {
	accessKey, ok := lookup(AccessKeyEnv)
	if !ok {
		return Credentials{}, &MissingEnvError{Name: AccessKeyEnv}
	}

	secretKey, ok := lookup(SecretKeyEnv)
	if !ok {
		return Credentials{}, &MissingEnvError{Name: SecretKeyEnv}
	}

	return Credentials{AccessKey: accessKey, SecretKey: secretKey}, nil
}

// ForDeployment binds the credentials to the region and endpoint of a deployment.
func (configCredentials Credentials) ForDeployment(c DeployConfig) Credentials {
	configCredentials.Region = c.Region
	configCredentials.Endpoint = c.Endpoint
	return configCredentials
}

// GetAwsConfig always uses the static key pair, even when a key is empty, so
// requests sign with exactly what was written to the credentials file. The
// SDK retryer is disabled.
func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	awsConfig := aws.NewConfig().
		WithRegion(configCredentials.Region).
		WithMaxRetries(0).
		WithCredentials(credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		))

	if configCredentials.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(configCredentials.Endpoint)
	}

	return awsConfig
}
