package tree_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bonsai/internal/tree"
)

func opts(seed int64) tree.Options {
	return tree.Options{
		Width:      40,
		Height:     20,
		Life:       32,
		Multiplier: 5,
		Seed:       seed,
	}
}

var _ = Describe("growth engine", func() {
	Describe("determinism", func() {
		It("produces identical trees for the same seed", func() {
			a, err := tree.New(opts(42))
			Expect(err).NotTo(HaveOccurred())
			b, err := tree.New(opts(42))
			Expect(err).NotTo(HaveOccurred())

			Expect(a.GrowAll(context.Background())).To(Succeed())
			Expect(b.GrowAll(context.Background())).To(Succeed())

			Expect(a.Branches()).To(Equal(b.Branches()))
			Expect(a.Steps()).To(Equal(b.Steps()))
			Expect(a.Cells()).To(Equal(b.Cells()))
		})

		It("tracks step-for-step in incremental mode", func() {
			a, _ := tree.New(opts(7))
			b, _ := tree.New(opts(7))

			for i := 0; i < 400; i++ {
				aMore := a.Grow()
				bMore := b.Grow()
				Expect(bMore).To(Equal(aMore))
				Expect(b.Branches()).To(Equal(a.Branches()))
				Expect(b.Alive()).To(Equal(a.Alive()))
				if !aMore {
					break
				}
			}
			Expect(a.Segments()).To(Equal(b.Segments()))
		})

		It("produces different trees for different seeds", func() {
			a, _ := tree.New(opts(1))
			b, _ := tree.New(opts(2))

			Expect(a.GrowAll(context.Background())).To(Succeed())
			Expect(b.GrowAll(context.Background())).To(Succeed())

			Expect(a.Cells()).NotTo(Equal(b.Cells()))
		})
	})

	Describe("termination", func() {
		It("reaches the all-dead state within a bounded number of calls", func() {
			for _, seed := range []int64{1, 2, 3, 99, 4242} {
				e, err := tree.New(opts(seed))
				Expect(err).NotTo(HaveOccurred())

				limit := e.Options().Life * 10
				calls := 0
				for e.Grow() {
					calls++
					Expect(calls).To(BeNumerically("<=", limit),
						"seed %d still growing after %d calls", seed, limit)
				}
				Expect(e.Done()).To(BeTrue())
			}
		})

		It("terminates across the parameter range", func() {
			params := []struct{ life, mult int }{
				{1, 1}, {8, 1}, {20, 3}, {48, 5}, {64, 9},
			}
			for _, p := range params {
				o := opts(11)
				o.Life = p.life
				o.Multiplier = p.mult
				e, err := tree.New(o)
				Expect(err).NotTo(HaveOccurred())

				limit := p.life*10 + 20
				calls := 0
				for e.Grow() {
					calls++
					Expect(calls).To(BeNumerically("<=", limit))
				}
			}
		})
	})

	Describe("boundary clamping", func() {
		It("never reports a cell outside the viewport", func() {
			for _, seed := range []int64{5, 6, 7} {
				o := opts(seed)
				o.Width = 20
				o.Height = 10
				e, _ := tree.New(o)
				Expect(e.GrowAll(context.Background())).To(Succeed())

				for _, c := range e.Cells() {
					Expect(c.X).To(And(BeNumerically(">=", 0), BeNumerically("<", o.Width)))
					Expect(c.Y).To(And(BeNumerically(">=", 0), BeNumerically("<", o.Height)))
				}
			}
		})

		It("holds under the viewport-safe delta clamp", func() {
			o := opts(8)
			o.ClampDeltas = true
			e, _ := tree.New(o)
			Expect(e.GrowAll(context.Background())).To(Succeed())

			for _, c := range e.Cells() {
				Expect(c.X).To(And(BeNumerically(">=", 0), BeNumerically("<", o.Width)))
				Expect(c.Y).To(And(BeNumerically(">=", 0), BeNumerically("<", o.Height)))
			}
		})
	})

	Describe("sprouting", func() {
		It("rejects a second sprout", func() {
			e, _ := tree.New(opts(1))
			Expect(e.Sprout()).To(Succeed())
			Expect(e.Sprout()).To(MatchError(tree.ErrAlreadySprouted))
		})

		It("rejects sprout even after the tree completes", func() {
			e, _ := tree.New(opts(1))
			Expect(e.GrowAll(context.Background())).To(Succeed())
			Expect(e.Sprout()).To(MatchError(tree.ErrAlreadySprouted))
		})
	})

	Describe("worklist shape", func() {
		It("grows the segment count monotonically", func() {
			e, _ := tree.New(opts(1))
			prev := 0
			for e.Grow() {
				Expect(e.Branches()).To(BeNumerically(">=", prev))
				prev = e.Branches()
			}
		})

		It("starts from the lone trunk plus at most one rare early fork", func() {
			e, _ := tree.New(opts(1))
			e.Grow()
			Expect(e.Branches()).To(BeNumerically(">=", 1))
			Expect(e.Branches()).To(BeNumerically("<=", 2))
		})
	})
})
