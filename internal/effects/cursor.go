package effects

const (
	DefaultFollowFactor = 0.12
	offscreen           = -100.0
)

// Follower is the cursor ring: it eases toward the pointer by a fixed
// fraction of the remaining distance each frame.
type Follower struct {
	X, Y    float64
	DotX    float64
	DotY    float64
	Factor  float64
	Visible bool
	Hover   bool
}

func NewFollower() *Follower {
	return &Follower{
		X: offscreen, Y: offscreen,
		DotX: offscreen, DotY: offscreen,
		Factor:  DefaultFollowFactor,
		Visible: true,
	}
}

// Target moves the dot, which tracks the pointer exactly.
func (f *Follower) Target(x, y float64) {
	f.DotX, f.DotY = x, y
}

func (f *Follower) Step() (float64, float64) {
	f.X += (f.DotX - f.X) * f.Factor
	f.Y += (f.DotY - f.Y) * f.Factor
	return f.X, f.Y
}

func (f *Follower) Leave() { f.Visible = false }
func (f *Follower) Enter() { f.Visible = true }

func (f *Follower) SetHover(on bool) { f.Hover = on }
