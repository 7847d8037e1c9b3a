// Package bootstrap composes the deployment bootstrap: credentials from the
// environment, the boto credentials file, the deployment config, the region
// connection and the security group.
package bootstrap

import (
	"fmt"
	"io"
	"os"

	"aws-bootstrap/botoconfig"
	"aws-bootstrap/config"
	"aws-bootstrap/driverset"
	"aws-bootstrap/logging"
	"aws-bootstrap/provisioner"
)

// ConnectFunc opens a region connection. driverset.NewRegionDriverSet in production.
type ConnectFunc func(logDest io.Writer, creds config.Credentials) (driverset.RegionDriverSet, error)

type Runner struct {
	LogDest         io.Writer
	LookupEnv       config.LookupEnvFunc
	CredentialsPath string
	ConfigPath      string
	Connect         ConnectFunc
}

func NewRunner(logDest io.Writer, credentialsPath, configPath string) *Runner {
	return &Runner{
		LogDest:         logDest,
		LookupEnv:       os.LookupEnv,
		CredentialsPath: credentialsPath,
		ConfigPath:      configPath,
		Connect:         driverset.NewRegionDriverSet,
	}
}

// Run performs every step once, in order, and stops at the first failure.
// A missing variable is returned as *config.MissingEnvError and a failed
// connection as *driverset.ConnectionError.
func (r *Runner) Run() (provisioner.Result, error) {
	logger := logging.New(r.LogDest, "Runner")

	creds, err := config.CredentialsFromEnv(r.LookupEnv)
	if err != nil {
		return provisioner.Result{}, err
	}

	err = botoconfig.WriteFile(r.CredentialsPath, creds)
	if err != nil {
		return provisioner.Result{}, fmt.Errorf("persisting credentials: %s", err)
	}
	logger.Infof("Wrote AWS credentials to %s", r.CredentialsPath)

	deployConfig, err := r.loadDeployConfig()
	if err != nil {
		return provisioner.Result{}, err
	}

	ds, err := r.Connect(r.LogDest, creds.ForDeployment(deployConfig))
	if err != nil {
		return provisioner.Result{}, err
	}

	return provisioner.NewSecurityGroupProvisioner(r.LogDest, deployConfig.SecurityGroup).Provision(ds)
}

func (r *Runner) loadDeployConfig() (config.DeployConfig, error) {
	configFile, err := os.Open(r.ConfigPath)
	if err != nil {
		return config.DeployConfig{}, fmt.Errorf("opening deployment config: %s", err)
	}
	defer configFile.Close() //nolint:errcheck

	c, err := config.NewFromReader(configFile)
	if err != nil {
		return config.DeployConfig{}, fmt.Errorf("loading %s: %s", r.ConfigPath, err)
	}

	return c, nil
}
