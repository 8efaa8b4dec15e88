package field

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/theme"
)

var _ = Describe("Field", func() {
	var (
		mode    theme.Mode
		f       *Field
		surface *recordingSurface
		vp      *StaticViewport
	)

	BeforeEach(func() {
		mode = theme.Light
		f, surface, vp = newTestField(1000, 800, &mode)
	})

	Describe("containment", func() {
		It("keeps every particle within one step of the surface", func() {
			for frame := 0; frame < 5000; frame++ {
				f.Frame()
				for _, p := range f.particles {
					Expect(p.X).To(BeNumerically(">=", -math.Abs(p.VX)))
					Expect(p.X).To(BeNumerically("<=", 1000+math.Abs(p.VX)))
					Expect(p.Y).To(BeNumerically(">=", -math.Abs(p.VY)))
					Expect(p.Y).To(BeNumerically("<=", 800+math.Abs(p.VY)))
				}
			}
		})

		It("never changes the population size", func() {
			f.Step(100)
			Expect(f.Particles()).To(HaveLen(50))
		})
	})

	Describe("velocity reversal", func() {
		It("flips only the axis that crossed", func() {
			f.particles = []Particle{{X: 999.9, Y: 400, VX: 0.2, VY: -0.15, Size: 1, Opacity: 0.2}}
			f.Frame()
			Expect(f.particles[0].VX).To(Equal(-0.2))
			Expect(f.particles[0].VY).To(Equal(-0.15))
		})

		It("leaves velocity alone while inside", func() {
			f.particles = []Particle{{X: 500, Y: 400, VX: 0.2, VY: -0.15, Size: 1, Opacity: 0.2}}
			f.Step(10)
			Expect(f.particles[0].VX).To(Equal(0.2))
			Expect(f.particles[0].VY).To(Equal(-0.15))
		})
	})

	Describe("links", func() {
		It("fades linearly to zero at the link distance", func() {
			Expect(LinkAlpha(0)).To(BeNumerically("~", 0.08, 1e-12))
			Expect(LinkAlpha(150)).To(BeZero())
			Expect(LinkAlpha(149.999)).To(BeNumerically(">", 0))
			Expect(LinkAlpha(30) - LinkAlpha(60)).To(BeNumerically("~", LinkAlpha(90)-LinkAlpha(120), 1e-12))
		})

		It("skips pairs at or beyond the link distance", func() {
			f.particles = []Particle{
				{X: 100, Y: 100, Size: 1, Opacity: 0.2},
				{X: 250, Y: 100, Size: 1, Opacity: 0.2},
			}
			f.Frame()
			Expect(surface.count("line")).To(BeZero())
		})
	})

	Describe("theme", func() {
		It("switches colour without touching the physics", func() {
			f.Step(5)
			before := f.Particles()
			Expect(f.Color()).To(Equal(RGB{16, 185, 129}))

			mode = theme.Dark
			Expect(f.Color()).To(Equal(RGB{52, 211, 153}))
			Expect(f.Particles()).To(Equal(before))

			f.Frame()
			c, ok := surface.first("circle")
			Expect(ok).To(BeTrue())
			Expect(c.c.RGB).To(Equal(DarkColor))
		})
	})

	Describe("resize", func() {
		It("clears the new bounds on the next frame", func() {
			vp.SetSize(640, 480)
			f.Frame()
			c, _ := surface.first("clear")
			Expect(c.args).To(Equal([]float64{0, 0, 640, 480}))
			Expect(f.Particles()).To(HaveLen(50))
		})
	})
})
