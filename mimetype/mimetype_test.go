package mimetype_test

import (
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/passkit/mimetype"
)

var _ = Describe("IsArchive", func() {
	table.DescribeTable("output file names",
		func(filename string, expectedMime string, expectedArchive bool) {
			mime, isArchive := mimetype.IsArchive(filename)
			Expect(mime).To(Equal(expectedMime))
			Expect(isArchive).To(Equal(expectedArchive))
		},
		table.Entry("gzipped tarball", "out/list.tar.gz", mimetype.Tgz, true),
		table.Entry("tgz", "list.tgz", mimetype.Tgz, true),
		table.Entry("upper case suffix", "LIST.TGZ", mimetype.Tgz, true),
		table.Entry("plain tarball", "list.tar", mimetype.Tar, true),
		table.Entry("text file", "list.txt", "", false),
		table.Entry("zip is not written", "list.zip", "", false),
		table.Entry("no suffix", "list", "", false),
	)
})
