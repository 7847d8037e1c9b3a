package resources

// Security group constants
const (
	AutoCreatedGroupDescription = "Auto created by Tachyon deploy"

	ProtocolTCP = "tcp"
	ProtocolUDP = "udp"

	MinPort      = 0
	MaxPort      = 65535
	AnywhereIPv4 = "0.0.0.0/0"
	AllProtocols = "-1"
)

// SecurityGroupDriver abstracts the EC2 calls needed to reconcile a security group
//
//counterfeiter:generate . SecurityGroupDriver
type SecurityGroupDriver interface {
	List() ([]SecurityGroup, error)
	Create(SecurityGroupDriverConfig) (SecurityGroup, error)
	Authorize(IngressDriverConfig) error
}

// SecurityGroup represents an EC2 security group. Rules holds ingress rules only.
type SecurityGroup struct {
	ID          string
	Name        string
	Description string
	Region      string
	Rules       []IngressRule
}

// HasRules reports whether any ingress rule is present
func (g SecurityGroup) HasRules() bool {
	return len(g.Rules) > 0
}

// IngressRule is a single inbound permission. At most one of CIDR and
// SourceGroupID is set.
type IngressRule struct {
	Protocol      string
	FromPort      int64
	ToPort        int64
	CIDR          string
	SourceGroupID string
}

// OpenIngressRules returns the full-range rules for every protocol, in authorization order
func OpenIngressRules() []IngressRule {
	return []IngressRule{
		{Protocol: ProtocolTCP, FromPort: MinPort, ToPort: MaxPort, CIDR: AnywhereIPv4},
		{Protocol: ProtocolUDP, FromPort: MinPort, ToPort: MaxPort, CIDR: AnywhereIPv4},
	}
}

// SecurityGroupDriverConfig describes a security group to create
type SecurityGroupDriverConfig struct {
	Name        string
	Description string
}

// IngressDriverConfig describes a rule to authorize on an existing group
type IngressDriverConfig struct {
	GroupID   string
	GroupName string
	Rule      IngressRule
}
