package driverset_test

import (
	"errors"

	"aws-bootstrap/config"
	"aws-bootstrap/driver"
	"aws-bootstrap/driverset"

	"github.com/aws/aws-sdk-go/aws/endpoints"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegionDriverSet", func() {
	creds := config.Credentials{AccessKey: "access-key", SecretKey: "secret-key"}

	It("returns drivers of the correct type", func() {
		ds, err := driverset.NewRegionDriverSet(GinkgoWriter, creds.ForDeployment(config.DeployConfig{Region: "us-west-2"}))
		Expect(err).ToNot(HaveOccurred())

		Expect(ds.Region()).To(Equal("us-west-2"))
		Expect(ds.SecurityGroupDriver()).To(BeAssignableToTypeOf(&driver.SDKSecurityGroupDriver{}))
	})

	It("accepts any region when an endpoint override is configured", func() {
		ds, err := driverset.NewRegionDriverSet(GinkgoWriter, creds.ForDeployment(config.DeployConfig{
			Region:   "local-test-1",
			Endpoint: "http://127.0.0.1:5000",
		}))
		Expect(err).ToNot(HaveOccurred())
		Expect(ds.Region()).To(Equal("local-test-1"))
	})

	Context("when the region is unknown", func() {
		It("returns a ConnectionError wrapping the resolver error", func() {
			_, err := driverset.NewRegionDriverSet(GinkgoWriter, creds.ForDeployment(config.DeployConfig{Region: "mars-north-1"}))

			var connErr *driverset.ConnectionError
			Expect(errors.As(err, &connErr)).To(BeTrue())
			Expect(connErr.Region).To(Equal("mars-north-1"))
			Expect(err.Error()).To(HavePrefix("connecting to region 'mars-north-1':"))

			var unknownErr endpoints.UnknownEndpointError
			Expect(errors.As(err, &unknownErr)).To(BeTrue())
		})
	})

	Context("when the region is empty", func() {
		It("returns a ConnectionError", func() {
			_, err := driverset.NewRegionDriverSet(GinkgoWriter, creds)

			var connErr *driverset.ConnectionError
			Expect(errors.As(err, &connErr)).To(BeTrue())
			Expect(err).To(MatchError("connecting to region '': region must not be empty"))
		})
	})
})
