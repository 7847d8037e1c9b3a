package provisioner

import (
	"fmt"
	"io"
	"time"

	"aws-bootstrap/driverset"
	"aws-bootstrap/logging"
	"aws-bootstrap/resources"

	"github.com/sirupsen/logrus"
)

// SecurityGroupProvisioner makes sure a named group exists and, if it has no
// ingress rules yet, opens every TCP and UDP port to the world. Groups that
// already carry rules are never modified.
type SecurityGroupProvisioner struct {
	GroupName   string
	Description string
	logger      *logrus.Entry
}

// Result describes what Provision did. Group reflects the rules known after the run.
type Result struct {
	Group      resources.SecurityGroup
	Created    bool
	Authorized bool
}

func NewSecurityGroupProvisioner(logDest io.Writer, groupName string) *SecurityGroupProvisioner {
	return &SecurityGroupProvisioner{
		GroupName:   groupName,
		Description: resources.AutoCreatedGroupDescription,
		logger:      logging.New(logDest, "SecurityGroupProvisioner"),
	}
}

func (p *SecurityGroupProvisioner) Provision(ds driverset.RegionDriverSet) (Result, error) {
	provisionStartTime := time.Now()
	defer func(startTime time.Time) {
		p.logger.Debugf("completed Provision() in %f minutes", time.Since(startTime).Minutes())
	}(provisionStartTime)

	region := ds.Region()
	sgDriver := ds.SecurityGroupDriver()

	p.logger.Infof("Setting up security group %s in %s", p.GroupName, region)

	result := Result{}

	groups, err := sgDriver.List()
	if err != nil {
		return result, fmt.Errorf("listing security groups: %s", err)
	}

	group, found := findByName(groups, p.GroupName)
	if !found {
		p.logger.Infof("Creating security group %s in %s", p.GroupName, region)
		group, err = sgDriver.Create(resources.SecurityGroupDriverConfig{
			Name:        p.GroupName,
			Description: p.Description,
		})
		if err != nil {
			return result, fmt.Errorf("creating security group: %s", err)
		}
		result.Created = true
	}
	result.Group = group

	if group.HasRules() {
		p.logger.Warnf("security group %s in %s already has rules, no modification will happen then", p.GroupName, region)
		return result, nil
	}

	for _, rule := range resources.OpenIngressRules() {
		err = sgDriver.Authorize(resources.IngressDriverConfig{
			GroupID:   group.ID,
			GroupName: group.Name,
			Rule:      rule,
		})
		if err != nil {
			return result, fmt.Errorf("authorizing security group %s: %s", p.GroupName, err)
		}
		result.Group.Rules = append(result.Group.Rules, rule)
	}
	result.Authorized = true

	return result, nil
}

// findByName returns the first group whose name matches exactly
func findByName(groups []resources.SecurityGroup, name string) (resources.SecurityGroup, bool) {
	for i := range groups {
		if groups[i].Name == name {
			return groups[i], true
		}
	}
	return resources.SecurityGroup{}, false
}
