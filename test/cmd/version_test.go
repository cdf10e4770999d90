package cmd

import (
	"github.com/liblicense/liblicense/cmd"
	. "github.com/onsi/ginkgo/v2"
	"github.com/stretchr/testify/assert"
)

var _ = Describe("version", Ordered, func() {
	It("outputs version", func() {
		output, err := executeCommand(cmd.NewRootCmd(), "version")
		assert.Nil(GinkgoT(), err)
		assert.Equal(GinkgoT(), "liblicense dev (unknown)\n", output)
	})
})
