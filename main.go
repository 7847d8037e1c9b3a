package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"aws-bootstrap/bootstrap"
	"aws-bootstrap/botoconfig"
	"aws-bootstrap/config"
	"aws-bootstrap/driverset"
	"aws-bootstrap/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitConfiguration = 1
	exitConnection    = 1
	exitFailure       = 2
)

type options struct {
	configPath      string
	credentialsPath string
	envFile         string
	logLevel        string
}

// exitError carries the process status for a failure that has already been logged
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	err := newRootCommand(sharedWriter).Execute()
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(sharedWriter, err) //nolint:errcheck
		os.Exit(exitConfiguration)
	}
}

func newRootCommand(logDest io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "aws-bootstrap",
		Short:         "Write ~/.boto from the environment and prepare the deployment security group",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logDest, opts)
		},
	}

	cmd.SetOut(logDest)
	cmd.SetErr(logDest)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(logDest, err)             //nolint:errcheck
		fmt.Fprintln(logDest, c.UsageString()) //nolint:errcheck
		return &exitError{code: exitConfiguration}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "Path to the YAML deployment config")
	flags.StringVar(&opts.credentialsPath, "credentials-file", "", "Path of the boto credentials file to write (default ~/.boto)")
	flags.StringVar(&opts.envFile, "env-file", "", "Optional dotenv file loaded before reading AWS credentials; exported variables win")
	flags.StringVar(&opts.logLevel, "log-level", logrus.InfoLevel.String(), "Log level (debug, info, warn, error)")

	return cmd
}

func run(logDest io.Writer, opts *options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(logDest, "invalid --log-level: %s\n", err) //nolint:errcheck
		return &exitError{code: exitConfiguration}
	}
	logDest = logging.WithLevel(logDest, level)

	logger := logging.New(logDest, "main")

	if opts.envFile != "" {
		err = godotenv.Load(opts.envFile)
		if err != nil {
			logger.Errorf("ERROR: loading env file %s: %s", opts.envFile, err)
			return &exitError{code: exitConfiguration}
		}
	}

	credentialsPath := opts.credentialsPath
	if credentialsPath == "" {
		credentialsPath, err = botoconfig.DefaultPath()
		if err != nil {
			logger.Errorf("ERROR: %s", err)
			return &exitError{code: exitConfiguration}
		}
	}

	result, err := bootstrap.NewRunner(logDest, credentialsPath, opts.configPath).Run()
	if err != nil {
		var missingEnvErr *config.MissingEnvError
		var connErr *driverset.ConnectionError
		switch {
		case errors.As(err, &missingEnvErr):
			logger.Errorf("ERROR: %s", err)
			return &exitError{code: exitConfiguration}
		case errors.As(err, &connErr):
			logger.Error(err)
			return &exitError{code: exitConnection}
		default:
			logger.Error(err)
			return &exitError{code: exitFailure}
		}
	}

	logger.WithFields(logrus.Fields{
		"group_id":   result.Group.ID,
		"created":    result.Created,
		"authorized": result.Authorized,
	}).Infof("Security group %s ready", result.Group.Name)

	return nil
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
