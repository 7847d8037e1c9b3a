package bootstrap_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"aws-bootstrap/bootstrap"
	"aws-bootstrap/config"
	"aws-bootstrap/driverset"
	"aws-bootstrap/driverset/driversetfakes"
	"aws-bootstrap/test_helpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Runner", func() {
	var (
		dir             string
		credentialsPath string
		configPath      string
		env             map[string]string
		connectCalls    int
		server          *test_helpers.FakeEC2Server
		runner          *bootstrap.Runner
	)

	writeDeployConfig := func(contents string) {
		Expect(os.WriteFile(configPath, []byte(contents), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		credentialsPath = filepath.Join(dir, ".boto")
		configPath = filepath.Join(dir, "ec2.yml")
		env = map[string]string{
			"AWS_ACCESS_KEY_ID":     "access-key",
			"AWS_SECRET_ACCESS_KEY": "secret-key",
		}
		connectCalls = 0

		server = test_helpers.NewFakeEC2Server()
		DeferCleanup(server.Close)

		writeDeployConfig("Region: us-west-2\nSecurity_Group: tachyon-sg\nEndpoint: " + server.URL + "\n")

		runner = bootstrap.NewRunner(GinkgoWriter, credentialsPath, configPath)
		runner.LookupEnv = func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}
		runner.Connect = func(logDest io.Writer, creds config.Credentials) (driverset.RegionDriverSet, error) {
			connectCalls++
			return driverset.NewRegionDriverSet(logDest, creds)
		}
	})

	Context("when a credential variable is missing", func() {
		DescribeTable("fails before touching files or the network",
			func(unset []string) {
				for _, name := range unset {
					delete(env, name)
				}

				_, err := runner.Run()

				var missingErr *config.MissingEnvError
				Expect(errors.As(err, &missingErr)).To(BeTrue())
				Expect(credentialsPath).ToNot(BeAnExistingFile())
				Expect(connectCalls).To(Equal(0))
				Expect(server.Actions()).To(BeEmpty())
			},
			Entry("access key", []string{"AWS_ACCESS_KEY_ID"}),
			Entry("secret key", []string{"AWS_SECRET_ACCESS_KEY"}),
			Entry("both", []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"}),
		)
	})

	It("writes the credentials file, replacing what was there", func() {
		Expect(os.WriteFile(credentialsPath, []byte("[Credentials]\naws_access_key_id = old\naws_secret_access_key = old\n[Boto]\ndebug = 1\n"), 0644)).To(Succeed())

		_, err := runner.Run()
		Expect(err).ToNot(HaveOccurred())

		contents, err := os.ReadFile(credentialsPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(contents)).To(Equal("[Credentials]\naws_access_key_id = access-key\naws_secret_access_key = secret-key"))
	})

	It("creates a missing group with the fixed description and opens it", func() {
		result, err := runner.Run()
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Created).To(BeTrue())
		Expect(result.Authorized).To(BeTrue())

		group, found := server.Group("tachyon-sg")
		Expect(found).To(BeTrue())
		Expect(group.Description).To(Equal("Auto created by Tachyon deploy"))
		Expect(group.Permissions).To(Equal([]test_helpers.FakePermission{
			{Protocol: "tcp", FromPort: 0, ToPort: 65535, CIDR: "0.0.0.0/0"},
			{Protocol: "udp", FromPort: 0, ToPort: 65535, CIDR: "0.0.0.0/0"},
		}))
		Expect(server.Actions()).To(Equal([]string{
			test_helpers.DescribeSecurityGroupsAction,
			test_helpers.CreateSecurityGroupAction,
			test_helpers.AuthorizeSecurityGroupIngressAction,
			test_helpers.AuthorizeSecurityGroupIngressAction,
		}))
	})

	It("opens an existing empty group without creating another", func() {
		server.AddGroup("tachyon-sg", "made by hand")

		result, err := runner.Run()
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Created).To(BeFalse())

		group, _ := server.Group("tachyon-sg")
		Expect(group.Description).To(Equal("made by hand"))
		Expect(group.Permissions).To(HaveLen(2))
	})

	It("leaves a group with rules unchanged across repeated runs", func() {
		existing := test_helpers.FakePermission{Protocol: "tcp", FromPort: 22, ToPort: 22, CIDR: "10.0.0.0/8"}
		server.AddGroup("tachyon-sg", "made by hand", existing)

		for i := 0; i < 2; i++ {
			_, err := runner.Run()
			Expect(err).ToNot(HaveOccurred())
		}

		group, _ := server.Group("tachyon-sg")
		Expect(group.Permissions).To(Equal([]test_helpers.FakePermission{existing}))
		Expect(server.Actions()).ToNot(ContainElement(test_helpers.AuthorizeSecurityGroupIngressAction))
	})

	It("is idempotent once the group has been configured", func() {
		_, err := runner.Run()
		Expect(err).ToNot(HaveOccurred())

		result, err := runner.Run()
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Created).To(BeFalse())
		Expect(result.Authorized).To(BeFalse())

		group, _ := server.Group("tachyon-sg")
		Expect(group.Permissions).To(HaveLen(2))
	})

	Context("when the connection cannot be opened", func() {
		It("returns the ConnectionError and makes no security group calls", func() {
			writeDeployConfig("Region: mars-north-1\nSecurity_Group: tachyon-sg\n")

			_, err := runner.Run()

			var connErr *driverset.ConnectionError
			Expect(errors.As(err, &connErr)).To(BeTrue())
			Expect(connErr.Region).To(Equal("mars-north-1"))
			Expect(server.Actions()).To(BeEmpty())
		})

		It("passes through whatever the connect function reports", func() {
			fakeDs := &driversetfakes.FakeRegionDriverSet{}
			runner.Connect = func(io.Writer, config.Credentials) (driverset.RegionDriverSet, error) {
				return fakeDs, &driverset.ConnectionError{Region: "us-west-2", Err: errors.New("no route to host")}
			}

			_, err := runner.Run()
			Expect(err).To(MatchError("connecting to region 'us-west-2': no route to host"))
			Expect(fakeDs.SecurityGroupDriverCallCount()).To(Equal(0))
		})
	})

	It("binds the connection to the configured region and the env credentials", func() {
		var seen config.Credentials
		fakeDs := &driversetfakes.FakeRegionDriverSet{}
		runner.Connect = func(_ io.Writer, creds config.Credentials) (driverset.RegionDriverSet, error) {
			seen = creds
			return fakeDs, errors.New("stop here")
		}

		_, _ = runner.Run()
		Expect(seen).To(Equal(config.Credentials{
			AccessKey: "access-key",
			SecretKey: "secret-key",
			Region:    "us-west-2",
			Endpoint:  server.URL,
		}))
	})

	Context("when the deployment config is unusable", func() {
		It("fails on a missing file after writing credentials", func() {
			Expect(os.Remove(configPath)).To(Succeed())

			_, err := runner.Run()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("opening deployment config:"))
			Expect(credentialsPath).To(BeAnExistingFile())
			Expect(connectCalls).To(Equal(0))
		})

		It("fails on a missing key", func() {
			writeDeployConfig("Region: us-west-2\n")

			_, err := runner.Run()
			Expect(err).To(MatchError("loading " + configPath + ": Security_Group must be specified in deployment config"))
			Expect(connectCalls).To(Equal(0))
		})
	})
})
