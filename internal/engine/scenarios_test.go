package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gridlife/internal/core"
	"gridlife/internal/engine"
	"gridlife/internal/sims/briansbrain"
	"gridlife/internal/sims/life"
)

var glider = [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

func liveCells(e *engine.Engine) map[[2]int]bool {
	out := map[[2]int]bool{}
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if e.Rule().IsActive(e.State(x, y)) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func shifted(cells [][2]int, dx, dy int, size core.Size) map[[2]int]bool {
	out := map[[2]int]bool{}
	for _, c := range cells {
		x := ((c[0]+dx)%size.W + size.W) % size.W
		y := ((c[1]+dy)%size.H + size.H) % size.H
		out[[2]int{x, y}] = true
	}
	return out
}

var _ = Describe("Engine", func() {
	var e *engine.Engine
	size := core.Size{W: 10, H: 8}

	Context("running Conway's rules", func() {
		BeforeEach(func() {
			e = engine.New(size, 5, life.New(), 3)
		})

		It("translates a glider by (1,1) every four generations", func() {
			for _, c := range glider {
				Expect(e.SetCell(c[0]+2, c[1]+2, life.Alive)).To(BeTrue())
			}
			for i := 0; i < 4; i++ {
				e.Step()
			}
			Expect(liveCells(e)).To(Equal(shifted(glider, 3, 3, size)))
			Expect(e.Population()).To(Equal(5))
		})

		It("carries a glider across the edges of the torus", func() {
			for _, c := range glider {
				e.SetCell(c[0]+7, c[1]+5, life.Alive)
			}
			for i := 0; i < 4*6; i++ {
				e.Step()
			}
			Expect(liveCells(e)).To(Equal(shifted(glider, 7+6, 5+6, size)))
		})

		It("kills an isolated cell on a 3x3 torus", func() {
			small := engine.New(core.Size{W: 3, H: 3}, 5, life.New(), 1)
			small.SetCell(1, 1, life.Alive)
			small.Step()
			Expect(small.Population()).To(BeZero())
		})
	})

	Context("switching rule sets", func() {
		It("never keeps values from the previous rule set", func() {
			e = engine.New(size, 5, life.New(), 11)
			e.Randomize(1)
			e.SwitchRuleSet(briansbrain.New())
			for y := 0; y < size.H; y++ {
				for x := 0; x < size.W; x++ {
					c, ok := e.Cell(x, y)
					Expect(ok).To(BeTrue())
					Expect(c.Value.Domain).To(Equal(briansbrain.Name))
				}
			}
			Expect(e.Population()).To(BeNumerically("<", size.Cells()))
		})
	})
})
