package driver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"aws-bootstrap/logging"
	"aws-bootstrap/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/sirupsen/logrus"
)

// ErrCodeDuplicatePermission is returned by EC2 when an ingress rule is already authorized
const ErrCodeDuplicatePermission = "InvalidPermission.Duplicate"

// SDKSecurityGroupDriver uses the AWS SDK to list, create and open security groups in one region
type SDKSecurityGroupDriver struct {
	ec2Client ec2iface.EC2API
	region    string
	logger    *logrus.Entry
}

// NewSecurityGroupDriver creates a SDKSecurityGroupDriver backed by an EC2 client built from awsSession
func NewSecurityGroupDriver(logDest io.Writer, awsSession client.ConfigProvider, region string) *SDKSecurityGroupDriver {
	d := NewSecurityGroupDriverWithClient(logDest, nil, region)
	d.ec2Client = ec2.New(awsSession, aws.NewConfig().WithLogger(newDriverLogger(d.logger)))
	return d
}

// NewSecurityGroupDriverWithClient creates a SDKSecurityGroupDriver around an existing EC2 client
func NewSecurityGroupDriverWithClient(logDest io.Writer, ec2Client ec2iface.EC2API, region string) *SDKSecurityGroupDriver {
	logger := logging.New(logDest, "SDKSecurityGroupDriver").WithField("region", region)
	return &SDKSecurityGroupDriver{ec2Client: ec2Client, region: region, logger: logger}
}

// List returns every security group visible in the region, in the order EC2 reports them
func (d *SDKSecurityGroupDriver) List() ([]resources.SecurityGroup, error) {
	listStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed List() in %f minutes", time.Since(startTime).Minutes())
	}(listStartTime)

	var groups []resources.SecurityGroup
	err := d.ec2Client.DescribeSecurityGroupsPages(&ec2.DescribeSecurityGroupsInput{},
		func(page *ec2.DescribeSecurityGroupsOutput, lastPage bool) bool {
			for _, g := range page.SecurityGroups {
				groups = append(groups, securityGroupFromEC2(g, d.region))
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("describing security groups: %s", err)
	}

	d.logger.Debugf("found %d security groups", len(groups))
	return groups, nil
}

// Create creates an empty security group
func (d *SDKSecurityGroupDriver) Create(driverConfig resources.SecurityGroupDriverConfig) (resources.SecurityGroup, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Debugf("completed Create() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	d.logger.Debugf("creating security group: %s", driverConfig.Name)
	reqOutput, err := d.ec2Client.CreateSecurityGroup(&ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(driverConfig.Name),
		Description: aws.String(driverConfig.Description),
	})
	if err != nil {
		return resources.SecurityGroup{}, fmt.Errorf("creating security group %s: %s", driverConfig.Name, err)
	}

	if reqOutput.GroupId == nil {
		return resources.SecurityGroup{}, errors.New("security group id nil")
	}

	return resources.SecurityGroup{
		ID:          *reqOutput.GroupId,
		Name:        driverConfig.Name,
		Description: driverConfig.Description,
		Region:      d.region,
	}, nil
}

// Authorize adds a single CIDR ingress rule. A rule EC2 already holds is not an error.
func (d *SDKSecurityGroupDriver) Authorize(driverConfig resources.IngressDriverConfig) error {
	rule := driverConfig.Rule

	reqInput := &ec2.AuthorizeSecurityGroupIngressInput{
		IpPermissions: []*ec2.IpPermission{
			{
				IpProtocol: aws.String(rule.Protocol),
				FromPort:   aws.Int64(rule.FromPort),
				ToPort:     aws.Int64(rule.ToPort),
				IpRanges: []*ec2.IpRange{
					{CidrIp: aws.String(rule.CIDR)},
				},
			},
		},
	}
	if driverConfig.GroupID != "" {
		reqInput.GroupId = aws.String(driverConfig.GroupID)
	} else {
		reqInput.GroupName = aws.String(driverConfig.GroupName)
	}

	d.logger.Debugf("authorizing %s %d-%d from %s on %s", rule.Protocol, rule.FromPort, rule.ToPort, rule.CIDR, driverConfig.GroupName)
	_, err := d.ec2Client.AuthorizeSecurityGroupIngress(reqInput)
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == ErrCodeDuplicatePermission {
			d.logger.Infof("%s ingress already authorized on %s", rule.Protocol, driverConfig.GroupName)
			return nil
		}
		return fmt.Errorf("authorizing %s ingress on %s: %s", rule.Protocol, driverConfig.GroupName, err)
	}

	return nil
}

func securityGroupFromEC2(g *ec2.SecurityGroup, region string) resources.SecurityGroup {
	group := resources.SecurityGroup{
		ID:          aws.StringValue(g.GroupId),
		Name:        aws.StringValue(g.GroupName),
		Description: aws.StringValue(g.Description),
		Region:      region,
	}

	for _, p := range g.IpPermissions {
		group.Rules = append(group.Rules, ingressRulesFromPermission(p)...)
	}

	return group
}

// ingressRulesFromPermission flattens one permission into a rule per grant.
// A permission with only prefix-list grants still yields one rule.
func ingressRulesFromPermission(p *ec2.IpPermission) []resources.IngressRule {
	base := resources.IngressRule{
		Protocol: aws.StringValue(p.IpProtocol),
		FromPort: aws.Int64Value(p.FromPort),
		ToPort:   aws.Int64Value(p.ToPort),
	}
	if base.Protocol == resources.AllProtocols {
		base.FromPort, base.ToPort = resources.MinPort, resources.MaxPort
	}

	var rules []resources.IngressRule
	for _, r := range p.IpRanges {
		rule := base
		rule.CIDR = aws.StringValue(r.CidrIp)
		rules = append(rules, rule)
	}
	for _, r := range p.Ipv6Ranges {
		rule := base
		rule.CIDR = aws.StringValue(r.CidrIpv6)
		rules = append(rules, rule)
	}
	for _, pair := range p.UserIdGroupPairs {
		rule := base
		rule.SourceGroupID = aws.StringValue(pair.GroupId)
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		rules = append(rules, base)
	}

	return rules
}
