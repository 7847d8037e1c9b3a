package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath = "conf/ec2.yml"

	RegionKey        = "Region"
	SecurityGroupKey = "Security_Group"
)

// DeployConfig is the deployment descriptor read from conf/ec2.yml.
// Keys other than the ones below are ignored.
type DeployConfig struct {
	Region        string `yaml:"Region"`
	SecurityGroup string `yaml:"Security_Group"`
	Endpoint      string `yaml:"Endpoint,omitempty"`
}

func NewFromReader(r io.Reader) (DeployConfig, error) {
	c := DeployConfig{}

	b, err := io.ReadAll(r)
	if err != nil {
		return DeployConfig{}, fmt.Errorf("reading deployment config: %s", err)
	}

	err = yaml.Unmarshal(b, &c)
	if err != nil {
		return DeployConfig{}, fmt.Errorf("parsing deployment config: %s", err)
	}

	err = c.validate()
	if err != nil {
		return DeployConfig{}, err
	}

	return c, nil
}

func (c *DeployConfig) validate() error {
	if c.Region == "" {
		return errors.New(RegionKey + " must be specified in deployment config")
	}

	if c.SecurityGroup == "" {
		return errors.New(SecurityGroupKey + " must be specified in deployment config")
	}

	return nil
}
