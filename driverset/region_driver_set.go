package driverset

import (
	"errors"
	"fmt"
	"io"

	"aws-bootstrap/config"
	"aws-bootstrap/driver"
	"aws-bootstrap/resources"

	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RegionDriverSet is the connection handle for one region
//
//counterfeiter:generate . RegionDriverSet
type RegionDriverSet interface {
	Region() string
	SecurityGroupDriver() resources.SecurityGroupDriver
}

// ConnectionError wraps any failure to open a region connection
type ConnectionError struct {
	Region string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to region '%s': %s", e.Region, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type regionDriverSet struct {
	region              string
	securityGroupDriver *driver.SDKSecurityGroupDriver
}

// NewRegionDriverSet checks the region and builds an AWS session for it.
// Regions unknown to the SDK are rejected unless creds carry an endpoint override.
func NewRegionDriverSet(logDest io.Writer, creds config.Credentials) (RegionDriverSet, error) {
	if creds.Region == "" {
		return nil, &ConnectionError{Region: creds.Region, Err: errors.New("region must not be empty")}
	}

	if creds.Endpoint == "" {
		_, err := endpoints.DefaultResolver().EndpointFor(ec2.EndpointsID, creds.Region, endpoints.StrictMatchingOption)
		if err != nil {
			return nil, &ConnectionError{Region: creds.Region, Err: err}
		}
	}

	awsSession, err := session.NewSession(creds.GetAwsConfig())
	if err != nil {
		return nil, &ConnectionError{Region: creds.Region, Err: err}
	}

	return &regionDriverSet{
		region:              creds.Region,
		securityGroupDriver: driver.NewSecurityGroupDriver(logDest, awsSession, creds.Region),
	}, nil
}

func (s *regionDriverSet) Region() string {
	return s.region
}

func (s *regionDriverSet) SecurityGroupDriver() resources.SecurityGroupDriver {
	return s.securityGroupDriver
}
