package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/liblicense/liblicense/cmd"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

const configuration = `
hash: sha-256
group_size: 8
algorithms:
  - name: release-1
    type: wrap
    options:
      suffix: "1.0"
  - name: release-2
    type: hmac
    options:
      secret: s3cret
  - name: release-3
    type: digest
    options:
      hash: blake3
      rounds: 3
aliases:
  shipped: [release-1, release-2]
verify:
  active: [shipped]
`

var _ = Describe("license keys", Ordered, func() {
	var filename string

	BeforeAll(func() {
		filename = filepath.Join(GinkgoT().TempDir(), "liblicense.yml")
		Expect(os.WriteFile(filename, []byte(configuration), 0o600)).To(Succeed())
	})

	Context("generate and verify", func() {
		var key string

		BeforeAll(func() {
			output, err := executeCommand(cmd.NewRootCmd(), "generate", "--config", filename, "--prefix", "name@thecompany.com")
			Expect(err).NotTo(HaveOccurred())
			key = strings.TrimSpace(output)
		})

		It("generates a key with all configured algorithms", func() {
			Expect(key).To(HavePrefix("name@thecompany.com:"))
			groups := strings.Split(strings.TrimPrefix(key, "name@thecompany.com:"), "-")
			Expect(groups).To(HaveLen(5))
			for _, group := range groups {
				Expect(group).To(HaveLen(8))
			}
		})

		It("verifies with the active algorithms", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "verify", "--config", filename, key)
			assert.Nil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "success\n", output)
		})

		It("verifies with every single algorithm", func() {
			for _, name := range []string{"release-1", "release-2", "release-3"} {
				output, err := executeCommand(cmd.NewRootCmd(), "verify", "--config", filename, "-a", name, key)
				assert.Nil(GinkgoT(), err, name)
				assert.Equal(GinkgoT(), "success\n", output, name)
			}
		})

		It("rejects a key generated without the active algorithms", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "generate", "--config", filename, "--prefix", "name@thecompany.com", "-a", "release-3")
			Expect(err).NotTo(HaveOccurred())

			output, err = executeCommand(cmd.NewRootCmd(), "verify", "--config", filename, strings.TrimSpace(output))
			assert.NotNil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "key_match_failure\nError: license key does not match\n", output)
		})

		It("rejects a key checked with another digest", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "verify", "-a", "underscore", key)
			assert.NotNil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "checksum_failure\nError: license key checksum mismatch\n", output)
		})

		It("reports the digest of the key", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "inspect", key)
			Expect(err).NotTo(HaveOccurred())
			Expect(output).To(ContainSubstring("group_size: 8\n"))
			Expect(output).To(ContainSubstring("- sha-256\n"))
		})
	})

	Context("errors", func() {
		It("invalid configuration file", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "generate", "--config", "unknown.yml", "--prefix", "x")
			assert.NotNil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "Error: could not load configuration: open unknown.yml: no such file or directory\n", output)
		})

		It("unknown algorithm", func() {
			output, err := executeCommand(cmd.NewRootCmd(), "verify", "--config", filename, "-a", "release-9", "abcdef-abcdef-abcdef")
			assert.NotNil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "Error: invalid configuration: unknown algorithm: release-9\n", output)
		})

		It("missing key", func() {
			GinkgoT().Setenv("LIBLICENSE_KEY", "")
			output, err := executeCommand(cmd.NewRootCmd(), "verify")
			assert.NotNil(GinkgoT(), err)
			assert.Equal(GinkgoT(), "Error: license key is missing\n", output)
		})
	})
})
