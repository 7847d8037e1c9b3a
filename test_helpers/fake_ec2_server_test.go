package test_helpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FakeEC2Server", func() {
	It("panics when a response cannot be encoded", func() {
		recorder := httptest.NewRecorder()

		Expect(func() { writeXML(recorder, make(chan int)) }).To(PanicWith(ContainSubstring("encoding chan int")))
	})

	It("answers injected failures with an EC2 error document", func() {
		server := NewFakeEC2Server()
		DeferCleanup(server.Close)
		server.FailAction(DescribeSecurityGroupsAction, "RequestLimitExceeded")

		resp, err := http.Post(server.URL, "application/x-www-form-urlencoded",
			strings.NewReader(url.Values{"Action": {DescribeSecurityGroupsAction}}.Encode()))
		Expect(err).ToNot(HaveOccurred())
		defer resp.Body.Close() //nolint:errcheck

		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(server.Actions()).To(Equal([]string{DescribeSecurityGroupsAction}))
	})
})
