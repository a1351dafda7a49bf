package builder

type Stage int

const (
	Build Stage = iota
	Tag
)

func (s Stage) String() string {
	return [...]string{"build", "tag"}[s]
}
