package model

// Window represents a top-level window that can be magnified.
type Window struct {
	ID     int    `yaml:"id"     json:"id"`
	PID    int    `yaml:"pid"    json:"pid"`
	Title  string `yaml:"title"  json:"title"`
	Bounds [4]int `yaml:"bounds" json:"bounds"`
}
