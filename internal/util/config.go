package util

// Config holds runtime settings and flags.
type Config struct {
	APIBase  string
	SavePath string
	Limit    int
	Theme    string
}
