package generator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jumperroute/router/generator"
)

var _ = Describe("CreateProblem", func() {
	var grid *generator.GridResult

	BeforeEach(func() {
		opts := generator.DefaultGridOptions()
		opts.Cols, opts.Rows = 4, 4
		var err error
		grid, err = generator.GenerateGrid(opts)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("when the target crossing count is reachable", func() {
		It("returns a connection set whose endpoints all lie on the perimeter", func() {
			conns, err := generator.CreateProblem(grid, 3, 99, generator.DefaultProblemOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(conns).NotTo(BeEmpty())

			onRing := make(map[int]bool)
			for _, id := range grid.PerimeterRegions {
				onRing[int(id)] = true
			}
			for _, c := range conns {
				Expect(onRing[int(c.StartRegion)]).To(BeTrue())
				Expect(onRing[int(c.EndRegion)]).To(BeTrue())
				Expect(c.StartRegion).NotTo(Equal(c.EndRegion))
			}
		})

		It("is reproducible for a fixed seed", func() {
			first, err := generator.CreateProblem(grid, 1, 4242, generator.DefaultProblemOptions())
			Expect(err).NotTo(HaveOccurred())
			second, err := generator.CreateProblem(grid, 1, 4242, generator.DefaultProblemOptions())
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(second))
		})
	})

	Context("when the retry budget cannot possibly reach the target", func() {
		It("fails with ErrGenerationFailed rather than looping unboundedly", func() {
			opts := generator.ProblemOptions{MaxAttempts: 5, StartConnections: 1, MaxConnections: 1}
			_, err := generator.CreateProblem(grid, 10, 1, opts)
			Expect(err).To(MatchError(generator.ErrGenerationFailed))
		})
	})

	Context("when the grid has no perimeter at all", func() {
		It("fails immediately without consuming any attempts", func() {
			empty := &generator.GridResult{}
			_, err := generator.CreateProblem(empty, 0, 1, generator.DefaultProblemOptions())
			Expect(err).To(MatchError(generator.ErrGenerationFailed))
		})
	})
})
