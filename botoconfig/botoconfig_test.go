package botoconfig_test

import (
	"bytes"
	"os"
	"path/filepath"

	"aws-bootstrap/botoconfig"
	"aws-bootstrap/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Botoconfig", func() {
	creds := config.Credentials{AccessKey: "AKIAEXAMPLE", SecretKey: "wJalrXUtnFEMI"}
	expected := "[Credentials]\naws_access_key_id = AKIAEXAMPLE\naws_secret_access_key = wJalrXUtnFEMI"

	Describe("Write", func() {
		It("renders exactly three lines with no trailing newline", func() {
			buf := &bytes.Buffer{}
			Expect(botoconfig.Write(buf, creds)).To(Succeed())
			Expect(buf.String()).To(Equal(expected))
		})
	})

	Describe("WriteFile", func() {
		var dir string
		var path string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
			path = filepath.Join(dir, ".boto")
		})

		It("creates the file", func() {
			Expect(botoconfig.WriteFile(path, creds)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(Equal(expected))
		})

		It("overwrites a longer existing file without leaving old content behind", func() {
			stale := expected + "\n[Boto]\ndebug = 2\nnum_retries = 10\n"
			Expect(os.WriteFile(path, []byte(stale), 0644)).To(Succeed())

			Expect(botoconfig.WriteFile(path, creds)).To(Succeed())

			contents, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(contents)).To(Equal(expected))
		})

		It("leaves no temp files behind", func() {
			Expect(botoconfig.WriteFile(path, creds)).To(Succeed())

			entries, err := os.ReadDir(dir)
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(Equal(".boto"))
		})

		It("restricts the file to its owner", func() {
			Expect(botoconfig.WriteFile(path, creds)).To(Succeed())

			info, err := os.Stat(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0600)))
		})

		It("returns an error when the directory does not exist", func() {
			err := botoconfig.WriteFile(filepath.Join(dir, "missing", ".boto"), creds)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("writing credentials file"))
		})
	})

	Describe("DefaultPath", func() {
		It("points at .boto in the home directory", func() {
			home := GinkgoT().TempDir()
			GinkgoT().Setenv("HOME", home)

			path, err := botoconfig.DefaultPath()
			Expect(err).ToNot(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(home, ".boto")))
		})
	})
})
